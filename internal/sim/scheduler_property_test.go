package sim

import (
	"math"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/r-4spberry/markevy/internal/intent"
	"github.com/r-4spberry/markevy/internal/ledger"
	"github.com/r-4spberry/markevy/internal/market"
)

// Whole-run invariants over arbitrary configurations and seeds: value
// conservation, history bookkeeping, and per-trader order exclusivity.
func TestProperty_RunInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Traders:              rapid.IntRange(1, 30).Draw(t, "traders"),
			InitialCash:          rapid.Float64Range(0, 20_000).Draw(t, "cash"),
			InitialShares:        uint(rapid.IntRange(0, 60).Draw(t, "shares")),
			CompaniesPerCategory: rapid.IntRange(1, 2).Draw(t, "companies"),
			DayZeroPrice:         rapid.Float64Range(0, 200).Draw(t, "dayZero"),
			Intent:               intent.Config{NoiseStdDev: rapid.Float64Range(0.1, 20).Draw(t, "stddev")},
		}
		seed := rapid.Int64().Draw(t, "seed")
		days := rapid.IntRange(1, 8).Draw(t, "days")

		s, err := NewScheduler(cfg, rand.New(rand.NewSource(seed)), nil)
		if err != nil {
			t.Fatalf("NewScheduler err=%v", err)
		}

		initialCash := s.led.TotalCash()
		totalShares := uint(cfg.Traders) * cfg.InitialShares

		for day := 1; day <= days; day++ {
			if _, err := s.AdvanceDay(); err != nil {
				t.Fatalf("day %d err=%v", day, err)
			}

			if got := s.led.TotalCash(); math.Abs(got-initialCash) > 1e-6*(initialCash+1) {
				t.Fatalf("day %d cash not conserved: %v -> %v", day, initialCash, got)
			}

			for a := 0; a < s.reg.Len(); a++ {
				asset := s.reg.Asset(market.AssetID(a))

				if got := s.led.TotalShares(a); got != totalShares {
					t.Fatalf("day %d asset %d shares not conserved: %d -> %d", day, a, totalShares, got)
				}
				if len(asset.History) != day+1 {
					t.Fatalf("day %d asset %d history len=%d", day, a, len(asset.History))
				}

				buyers := make(map[ledger.TraderID]bool)
				for _, o := range asset.LastDayBuys {
					if buyers[o.Trader] {
						t.Fatalf("day %d asset %d trader %d has two buys", day, a, o.Trader)
					}
					buyers[o.Trader] = true
				}
				for _, o := range asset.LastDaySells {
					if buyers[o.Trader] {
						t.Fatalf("day %d asset %d trader %d on both sides", day, a, o.Trader)
					}
				}
			}
		}
	})
}
