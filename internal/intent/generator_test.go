package intent

import (
	"errors"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/ledger"
	"github.com/r-4spberry/markevy/internal/market"
)

func newFixture(seed int64, traders int, cash float64, shares uint) (*ledger.Ledger, *market.Registry, []*book.Book, *Generator) {
	rng := rand.New(rand.NewSource(seed))
	reg := market.NewRegistry(1, 100, rng)
	led := ledger.New(traders, reg.Len(), cash, shares)
	books := make([]*book.Book, reg.Len())
	for i := range books {
		books[i] = book.New()
	}
	gen, err := NewGenerator(DefaultConfig(), rng)
	if err != nil {
		panic(err)
	}
	return led, reg, books, gen
}

func TestNewGenerator_RejectsNonPositiveStdDev(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewGenerator(Config{NoiseStdDev: 0}, rng); !errors.Is(err, ErrInvalidNoise) {
		t.Fatalf("expected ErrInvalidNoise for 0, got %v", err)
	}
	if _, err := NewGenerator(Config{NoiseStdDev: -1}, rng); !errors.Is(err, ErrInvalidNoise) {
		t.Fatalf("expected ErrInvalidNoise for -1, got %v", err)
	}
}

func TestGenerateDay_DoesNotTouchBalances(t *testing.T) {
	led, reg, books, gen := newFixture(42, 20, 1_000, 5)

	gen.GenerateDay(led, reg, books)

	if got := led.TotalCash(); got != 20_000 {
		t.Fatalf("cash changed during intent generation: %v", got)
	}
	for _, tr := range led.Traders() {
		for a, h := range tr.Holdings {
			if h != 5 {
				t.Fatalf("trader %d asset %d holdings changed: %d", tr.ID, a, h)
			}
		}
	}
}

func TestGenerateDay_SameSeedReplaysSameBooks(t *testing.T) {
	ledA, regA, booksA, genA := newFixture(7, 30, 1_000, 5)
	ledB, regB, booksB, genB := newFixture(7, 30, 1_000, 5)

	genA.GenerateDay(ledA, regA, booksA)
	genB.GenerateDay(ledB, regB, booksB)

	for a := range booksA {
		if len(booksA[a].Buys) != len(booksB[a].Buys) || len(booksA[a].Sells) != len(booksB[a].Sells) {
			t.Fatalf("asset %d books differ in size", a)
		}
		for i := range booksA[a].Buys {
			if booksA[a].Buys[i] != booksB[a].Buys[i] {
				t.Fatalf("asset %d buy %d differs: %+v vs %+v", a, i, booksA[a].Buys[i], booksB[a].Buys[i])
			}
		}
		for i := range booksA[a].Sells {
			if booksA[a].Sells[i] != booksB[a].Sells[i] {
				t.Fatalf("asset %d sell %d differs: %+v vs %+v", a, i, booksA[a].Sells[i], booksB[a].Sells[i])
			}
		}
	}
}

func TestGenerateDay_NoSellsWithoutHoldings(t *testing.T) {
	led, reg, books, gen := newFixture(3, 50, 1_000, 0)

	gen.GenerateDay(led, reg, books)

	for a, b := range books {
		if len(b.Sells) != 0 {
			t.Fatalf("asset %d has %d sell orders from shareless traders", a, len(b.Sells))
		}
	}
}

// Every generated buy is affordable at day-start cash and non-negative;
// every order is single-unit; no trader is on both sides of one asset.
func TestProperty_GeneratedOrdersRespectBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		traders := rapid.IntRange(1, 40).Draw(t, "traders")
		cash := rapid.Float64Range(0, 500).Draw(t, "cash")
		shares := uint(rapid.IntRange(0, 3).Draw(t, "shares"))

		led, reg, books, gen := newFixture(seed, traders, cash, shares)
		gen.GenerateDay(led, reg, books)

		for a, b := range books {
			bought := make(map[ledger.TraderID]bool)
			for _, o := range b.Buys {
				if o.Quantity != 1 {
					t.Fatalf("asset %d buy quantity=%d", a, o.Quantity)
				}
				if o.Price < 0 || o.Price > cash {
					t.Fatalf("asset %d buy price %v outside [0, %v]", a, o.Price, cash)
				}
				if bought[o.Trader] {
					t.Fatalf("asset %d trader %d placed two buys", a, o.Trader)
				}
				bought[o.Trader] = true
			}
			for _, o := range b.Sells {
				if o.Quantity != 1 {
					t.Fatalf("asset %d sell quantity=%d", a, o.Quantity)
				}
				if o.Price < 0 {
					t.Fatalf("asset %d sell price %v negative", a, o.Price)
				}
				if bought[o.Trader] {
					t.Fatalf("asset %d trader %d on both sides", a, o.Trader)
				}
			}
		}
	})
}
