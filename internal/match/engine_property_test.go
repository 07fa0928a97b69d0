package match

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/ledger"
)

// The auction moves cash and shares between traders but never creates or
// destroys either, and performs at most min(|buys|, |sells|) trades.
func TestProperty_SettleConservesCashAndShares(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buyers := rapid.IntRange(0, 20).Draw(t, "buyers")
		sellers := rapid.IntRange(0, 20).Draw(t, "sellers")

		// Buyers occupy ids [0, buyers), sellers the rest, so order
		// exclusivity per trader holds by construction.
		led := ledger.New(buyers+sellers, 1, 1_000, 2)
		asset := newAsset(100)
		b := book.New()

		for i := 0; i < buyers; i++ {
			price := rapid.Float64Range(0, 200).Draw(t, "buyPrice")
			b.AddBuy(book.Order{Trader: ledger.TraderID(i), Price: price, Quantity: 1})
		}
		for i := 0; i < sellers; i++ {
			price := rapid.Float64Range(0, 200).Draw(t, "sellPrice")
			b.AddSell(book.Order{Trader: ledger.TraderID(buyers + i), Price: price, Quantity: 1})
		}

		initialCash := led.TotalCash()
		initialShares := led.TotalShares(0)

		if err := NewEngine(led).Settle(asset, b); err != nil {
			t.Fatalf("Settle err=%v", err)
		}

		maxTrades := buyers
		if sellers < maxTrades {
			maxTrades = sellers
		}
		if asset.TradesLastDay > maxTrades {
			t.Fatalf("trades=%d exceeds min(%d, %d)", asset.TradesLastDay, buyers, sellers)
		}

		if got := led.TotalShares(0); got != initialShares {
			t.Fatalf("shares not conserved: %d -> %d", initialShares, got)
		}
		if got := led.TotalCash(); math.Abs(got-initialCash) > 1e-6 {
			t.Fatalf("cash not conserved: %v -> %v", initialCash, got)
		}

		if asset.TradesLastDay == 0 && asset.LastPrice != 100 {
			t.Fatalf("price moved without trades: %v", asset.LastPrice)
		}
	})
}

// After matching stops, the remaining best buy must be below the remaining
// best sell; otherwise the loop ended too early.
func TestProperty_SettleLeavesNoCrossingRemainder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buyers := rapid.IntRange(1, 15).Draw(t, "buyers")
		sellers := rapid.IntRange(1, 15).Draw(t, "sellers")

		led := ledger.New(buyers+sellers, 1, 10_000, 1)
		asset := newAsset(50)
		b := book.New()

		for i := 0; i < buyers; i++ {
			price := rapid.Float64Range(0, 100).Draw(t, "buyPrice")
			b.AddBuy(book.Order{Trader: ledger.TraderID(i), Price: price, Quantity: 1})
		}
		for i := 0; i < sellers; i++ {
			price := rapid.Float64Range(0, 100).Draw(t, "sellPrice")
			b.AddSell(book.Order{Trader: ledger.TraderID(buyers + i), Price: price, Quantity: 1})
		}

		if err := NewEngine(led).Settle(asset, b); err != nil {
			t.Fatalf("Settle err=%v", err)
		}

		n := asset.TradesLastDay
		if n < len(asset.LastDayBuys) && n < len(asset.LastDaySells) {
			if asset.LastDayBuys[n].Price >= asset.LastDaySells[n].Price {
				t.Fatalf("crossing orders left unmatched: buy %v >= sell %v",
					asset.LastDayBuys[n].Price, asset.LastDaySells[n].Price)
			}
		}
	})
}
