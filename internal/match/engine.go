package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/ledger"
	"github.com/r-4spberry/markevy/internal/market"
)

var (
	// ErrMultiUnitOrder marks an order with quantity other than 1 reaching
	// the matching stage. Multi-unit orders are an explicit, unsupported
	// limitation; the engine stops rather than silently mis-settle.
	ErrMultiUnitOrder = errors.New("multi-unit orders are not supported")
)

// Engine executes one asset's single-price call auction and settles the
// resulting trades against the trader ledger.
type Engine struct {
	led *ledger.Ledger
}

// NewEngine creates an Engine settling against led.
func NewEngine(led *ledger.Ledger) *Engine {
	return &Engine{led: led}
}

// Settle matches one asset's book and settles trades in place.
//
// Buys are sorted descending by price and sells ascending, both stably:
// orders at the same price keep their arrival order, which is the sole
// tie-break rule. The full sorted lists are snapshotted onto the asset
// for reporting before any matching happens.
//
// Two cursors then walk the lists pairing the best remaining buy with the
// best remaining sell until prices no longer cross. Each pair trades one
// unit at the midpoint of the two limit prices; cash and shares move
// between the two traders at that price. After the walk, the asset's last
// price becomes the mean trade price of the day, or stays unchanged when
// nothing crossed.
//
// Errors are invariant violations or unsupported inputs and abort the
// simulation; no partial trade is ever applied before one is returned.
func (e *Engine) Settle(asset *market.Asset, b *book.Book) error {
	sort.SliceStable(b.Buys, func(i, j int) bool { return b.Buys[i].Price > b.Buys[j].Price })
	sort.SliceStable(b.Sells, func(i, j int) bool { return b.Sells[i].Price < b.Sells[j].Price })

	asset.LastDayBuys = append(asset.LastDayBuys[:0], b.Buys...)
	asset.LastDaySells = append(asset.LastDaySells[:0], b.Sells...)

	var (
		totalValue float64
		trades     int
	)

	i, j := 0, 0
	for i < len(b.Buys) && j < len(b.Sells) {
		buy, sell := b.Buys[i], b.Sells[j]

		if buy.Quantity != 1 || sell.Quantity != 1 {
			return fmt.Errorf("%w: buy qty %d, sell qty %d", ErrMultiUnitOrder, buy.Quantity, sell.Quantity)
		}
		if buy.Price < sell.Price {
			break
		}

		tradePrice := (buy.Price + sell.Price) / 2

		buyer, seller, err := e.led.Pair(buy.Trader, sell.Trader)
		if err != nil {
			return fmt.Errorf("settle %s: %w", asset.Symbol, err)
		}

		seller.Cash += tradePrice
		buyer.Cash -= tradePrice
		seller.Holdings[asset.ID]--
		buyer.Holdings[asset.ID]++

		totalValue += tradePrice
		trades++
		i++
		j++
	}

	asset.TradesLastDay = trades
	if trades > 0 {
		asset.LastPrice = totalValue / float64(trades)
	}
	return nil
}
