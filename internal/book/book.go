package book

import "github.com/r-4spberry/markevy/internal/ledger"

// Order is a single-unit limit order for the current day's auction.
// Quantity is carried so the matcher can reject anything other than 1;
// multi-unit orders are an explicitly unsupported case.
type Order struct {
	Trader   ledger.TraderID
	Price    float64
	Quantity uint
}

// Book holds one asset's outstanding orders for the current day.
// Orders are appended during intent generation, consumed by the matcher,
// and the whole book is cleared once per day.
type Book struct {
	Buys  []Order
	Sells []Order
}

// New returns an empty book.
func New() *Book {
	return &Book{}
}

// AddBuy appends a buy order, preserving arrival order.
func (b *Book) AddBuy(o Order) {
	b.Buys = append(b.Buys, o)
}

// AddSell appends a sell order, preserving arrival order.
func (b *Book) AddSell(o Order) {
	b.Sells = append(b.Sells, o)
}

// Clear empties both sides, keeping the backing arrays for the next day.
func (b *Book) Clear() {
	b.Buys = b.Buys[:0]
	b.Sells = b.Sells[:0]
}
