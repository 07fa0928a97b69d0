package intent

import (
	"errors"
	"math/rand"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/ledger"
	"github.com/r-4spberry/markevy/internal/market"
)

var ErrInvalidNoise = errors.New("price noise standard deviation must be positive")

// Config holds configuration for the intent generator.
type Config struct {
	// NoiseStdDev is the standard deviation of the Gaussian noise added
	// to the last price when sampling order prices.
	NoiseStdDev float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{NoiseStdDev: 5.0}
}

// outcome is the ternary decision a trader makes per asset per day.
// The numeric values fix the mapping of rng.Intn(3) draws, so a seeded
// run replays the same decisions.
type outcome int

const (
	outcomeHold outcome = iota
	outcomeSell
	outcomeBuy
)

// Generator produces at most one buy or sell order per trader per asset
// per day. It reads the ledger and registry and writes only into the
// order books; balances are never touched here.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng. The rng is the sole
// source of randomness, so tests inject a fixed seed for reproducibility.
func NewGenerator(cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.NoiseStdDev <= 0 {
		return nil, ErrInvalidNoise
	}
	return &Generator{cfg: cfg, rng: rng}, nil
}

// GenerateDay samples one {hold, buy, sell} decision per trader per asset
// and appends the resulting orders. books is indexed by asset id.
//
// Affordability for buys is checked against the trader's cash as it stands
// now, at the start of the day; settlement later the same day may consume
// that cash across several assets without re-checking.
func (g *Generator) GenerateDay(led *ledger.Ledger, reg *market.Registry, books []*book.Book) {
	for a := 0; a < reg.Len(); a++ {
		asset := reg.Asset(market.AssetID(a))
		b := books[a]
		for _, tr := range led.Traders() {
			switch outcome(g.rng.Intn(3)) {
			case outcomeHold:
				continue
			case outcomeBuy:
				price := asset.LastPrice + g.noise()
				if price < 0 || price > tr.Cash {
					continue
				}
				b.AddBuy(book.Order{Trader: tr.ID, Price: price, Quantity: 1})
			case outcomeSell:
				if tr.Holdings[a] == 0 {
					continue
				}
				price := asset.LastPrice + g.noise()
				if price < 0 {
					continue
				}
				b.AddSell(book.Order{Trader: tr.ID, Price: price, Quantity: 1})
			}
		}
	}
}

func (g *Generator) noise() float64 {
	return g.rng.NormFloat64() * g.cfg.NoiseStdDev
}
