package ledger

import "errors"

var (
	ErrUnknownTrader = errors.New("unknown trader id")
	ErrSameTrader    = errors.New("buyer and seller are the same trader")
)

// TraderID uniquely identifies a trader. IDs are dense indices into the
// ledger's trader arena.
type TraderID int

// Trader holds one trader's durable balances: cash and per-asset holdings.
// Holdings is indexed by asset id and always covers every asset.
type Trader struct {
	ID       TraderID
	Cash     float64
	Holdings []uint
}

// Ledger is the durable store of all trader balances. Traders are created
// once at setup and never destroyed during a run.
type Ledger struct {
	traders []Trader
}

// New creates a ledger of numTraders traders, each seeded with initialCash
// and initialShares of every one of numAssets assets.
func New(numTraders, numAssets int, initialCash float64, initialShares uint) *Ledger {
	l := &Ledger{traders: make([]Trader, numTraders)}
	for i := range l.traders {
		holdings := make([]uint, numAssets)
		for a := range holdings {
			holdings[a] = initialShares
		}
		l.traders[i] = Trader{
			ID:       TraderID(i),
			Cash:     initialCash,
			Holdings: holdings,
		}
	}
	return l
}

// Len returns the number of traders.
func (l *Ledger) Len() int { return len(l.traders) }

// Traders returns the live trader arena. Callers must not grow or reorder
// the slice; ids are positions.
func (l *Ledger) Traders() []Trader { return l.traders }

// Trader returns a mutable reference to the trader with the given id.
func (l *Ledger) Trader(id TraderID) (*Trader, error) {
	if id < 0 || int(id) >= len(l.traders) {
		return nil, ErrUnknownTrader
	}
	return &l.traders[id], nil
}

// Pair returns mutable references to two distinct traders. A trade must
// never pair a trader with itself; coinciding ids are an invariant
// violation upstream and are reported as ErrSameTrader.
func (l *Ledger) Pair(a, b TraderID) (*Trader, *Trader, error) {
	if a == b {
		return nil, nil, ErrSameTrader
	}
	ta, err := l.Trader(a)
	if err != nil {
		return nil, nil, err
	}
	tb, err := l.Trader(b)
	if err != nil {
		return nil, nil, err
	}
	return ta, tb, nil
}

// TotalCash sums cash across all traders. Cash is only ever transferred
// between traders, so this is constant over a run up to float rounding.
func (l *Ledger) TotalCash() float64 {
	var total float64
	for i := range l.traders {
		total += l.traders[i].Cash
	}
	return total
}

// TotalShares sums holdings of one asset across all traders. Shares are
// transferred, never created or destroyed, so this is constant over a run.
func (l *Ledger) TotalShares(asset int) uint {
	var total uint
	for i := range l.traders {
		total += l.traders[i].Holdings[asset]
	}
	return total
}
