package market

import (
	"fmt"
	"math/rand"

	"github.com/r-4spberry/markevy/internal/book"
)

// Asset holds one listing's static and derived market state. History is
// append-only, indexed by day number, and seeded with the day-zero price
// so len(History) == day count + 1 at all times.
//
// LastDayBuys and LastDaySells are the previous day's full sorted order
// lists, overwritten each day; they exist purely for the reporting surface.
type Asset struct {
	ID       AssetID
	Symbol   string
	Category Category
	Color    string // display color, opaque to the core

	LastPrice     float64
	History       []float64
	TradesLastDay int

	LastDayBuys  []book.Order
	LastDaySells []book.Order
}

// RecordHistory appends the current last price to the asset's history.
// Called exactly once per day after matching, whether or not any trade
// occurred, so a flat price still produces a history point.
func (a *Asset) RecordHistory() {
	a.History = append(a.History, a.LastPrice)
}

// Registry owns all listed assets. Assets are created once at setup and
// never delisted during a run.
type Registry struct {
	assets []Asset
}

// NewRegistry lists companiesPerCategory assets in each of the five
// categories. Every asset starts at dayZeroPrice with that price already
// recorded as day zero of its history. Display colors are sampled from
// rng so a seeded run reproduces the same palette.
func NewRegistry(companiesPerCategory int, dayZeroPrice float64, rng *rand.Rand) *Registry {
	total := companiesPerCategory * NumCategories
	r := &Registry{assets: make([]Asset, total)}
	for i := range r.assets {
		r.assets[i] = Asset{
			ID:        AssetID(i),
			Symbol:    fmt.Sprintf("COMP%d", i),
			Category:  Category(i / companiesPerCategory),
			Color:     fmt.Sprintf("#%02X%02X%02X", rng.Intn(256), rng.Intn(256), rng.Intn(256)),
			LastPrice: dayZeroPrice,
			History:   []float64{dayZeroPrice},
		}
	}
	return r
}

// Len returns the number of listed assets.
func (r *Registry) Len() int { return len(r.assets) }

// Asset returns a mutable reference to the asset with the given id.
// Asset ids come from the registry itself, so out-of-range access is a
// programming error and panics via the slice bounds check.
func (r *Registry) Asset(id AssetID) *Asset {
	return &r.assets[id]
}
