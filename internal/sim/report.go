package sim

import (
	"github.com/google/uuid"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/market"
)

// AssetDaySummary is one asset's line in a day-end summary.
type AssetDaySummary struct {
	Symbol     string
	Price      float64
	TradeCount int
	BuyCount   int
	SellCount  int
}

// DaySummary is the record emitted after each completed day, for external
// logging and observation.
type DaySummary struct {
	Run    uuid.UUID
	Day    int
	Assets []AssetDaySummary
}

// AssetSnapshot is a read-only copy of one asset's market state.
type AssetSnapshot struct {
	ID       market.AssetID
	Symbol   string
	Category market.Category
	Color    string

	LastPrice     float64
	TradesLastDay int
	History       []float64

	LastDayBuys  []book.Order
	LastDaySells []book.Order
}

// Snapshot is a point-in-time copy of the reporting surface, safe to hand
// to renderers while the scheduler keeps running.
type Snapshot struct {
	Day    int
	Assets []AssetSnapshot
}

// Snapshot copies the current day number and every asset's market state.
// Slices are deep-copied; mutating the result never touches the core.
func (s *Scheduler) Snapshot() Snapshot {
	snap := Snapshot{Day: s.day, Assets: make([]AssetSnapshot, s.reg.Len())}
	for a := 0; a < s.reg.Len(); a++ {
		asset := s.reg.Asset(market.AssetID(a))
		snap.Assets[a] = AssetSnapshot{
			ID:            asset.ID,
			Symbol:        asset.Symbol,
			Category:      asset.Category,
			Color:         asset.Color,
			LastPrice:     asset.LastPrice,
			TradesLastDay: asset.TradesLastDay,
			History:       append([]float64(nil), asset.History...),
			LastDayBuys:   append([]book.Order(nil), asset.LastDayBuys...),
			LastDaySells:  append([]book.Order(nil), asset.LastDaySells...),
		}
	}
	return snap
}
