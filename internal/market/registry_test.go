package market

import (
	"math/rand"
	"testing"
)

func TestNewRegistry_ListsEveryCategory(t *testing.T) {
	r := NewRegistry(3, 100, rand.New(rand.NewSource(1)))

	if r.Len() != 15 {
		t.Fatalf("expected 15 assets, got %d", r.Len())
	}

	counts := make(map[Category]int)
	for i := 0; i < r.Len(); i++ {
		counts[r.Asset(AssetID(i)).Category]++
	}
	for c := Category(0); c < NumCategories; c++ {
		if counts[c] != 3 {
			t.Fatalf("category %s has %d assets", c, counts[c])
		}
	}

	first := r.Asset(0)
	if first.Symbol != "COMP0" {
		t.Fatalf("symbol=%q", first.Symbol)
	}
	if first.LastPrice != 100 {
		t.Fatalf("last price=%v", first.LastPrice)
	}
	if len(first.History) != 1 || first.History[0] != 100 {
		t.Fatalf("history not seeded with day-zero price: %v", first.History)
	}
}

func TestNewRegistry_ColorsReplayWithSeed(t *testing.T) {
	a := NewRegistry(2, 100, rand.New(rand.NewSource(7)))
	b := NewRegistry(2, 100, rand.New(rand.NewSource(7)))

	for i := 0; i < a.Len(); i++ {
		if a.Asset(AssetID(i)).Color != b.Asset(AssetID(i)).Color {
			t.Fatalf("asset %d colors differ: %s vs %s", i, a.Asset(AssetID(i)).Color, b.Asset(AssetID(i)).Color)
		}
	}
}

func TestRecordHistory_AppendsCurrentPrice(t *testing.T) {
	r := NewRegistry(1, 100, rand.New(rand.NewSource(1)))
	a := r.Asset(0)

	a.LastPrice = 105.5
	a.RecordHistory()
	a.RecordHistory()

	if len(a.History) != 3 {
		t.Fatalf("history len=%d", len(a.History))
	}
	if a.History[1] != 105.5 || a.History[2] != 105.5 {
		t.Fatalf("history=%v", a.History)
	}
}
