package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/r-4spberry/markevy/internal/book"
	"github.com/r-4spberry/markevy/internal/intent"
	"github.com/r-4spberry/markevy/internal/ledger"
	"github.com/r-4spberry/markevy/internal/market"
	"github.com/r-4spberry/markevy/internal/match"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// Scheduler owns the whole simulation state and advances it one day per
// external trigger. It is the only component that sequences mutations:
// intent generation writes the books, the matching engine settles them
// asset by asset in ascending id order, and history is recorded last.
//
// Everything runs synchronously on the caller's goroutine; a day always
// completes once triggered.
type Scheduler struct {
	cfg   Config
	runID uuid.UUID
	log   *zap.Logger

	day   int
	led   *ledger.Ledger
	reg   *market.Registry
	books []*book.Book
	gen   *intent.Generator
	eng   *match.Engine
}

// NewScheduler builds the full simulation from cfg. rng is the only
// randomness source (asset colors at setup, intent sampling afterwards),
// so a fixed seed replays an identical run. log may be nil.
func NewScheduler(cfg Config, rng *rand.Rand, log *zap.Logger) (*Scheduler, error) {
	if cfg.Traders <= 0 {
		return nil, fmt.Errorf("%w: traders must be positive, got %d", ErrInvalidConfig, cfg.Traders)
	}
	if cfg.CompaniesPerCategory <= 0 {
		return nil, fmt.Errorf("%w: companies per category must be positive, got %d", ErrInvalidConfig, cfg.CompaniesPerCategory)
	}
	if log == nil {
		log = zap.NewNop()
	}

	gen, err := intent.NewGenerator(cfg.Intent, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	reg := market.NewRegistry(cfg.CompaniesPerCategory, cfg.DayZeroPrice, rng)
	led := ledger.New(cfg.Traders, reg.Len(), cfg.InitialCash, cfg.InitialShares)

	books := make([]*book.Book, reg.Len())
	for i := range books {
		books[i] = book.New()
	}

	return &Scheduler{
		cfg:   cfg,
		runID: uuid.New(),
		log:   log,
		led:   led,
		reg:   reg,
		books: books,
		gen:   gen,
		eng:   match.NewEngine(led),
	}, nil
}

// Day returns the current day number. Day 0 is the pre-trading state.
func (s *Scheduler) Day() int { return s.day }

// RunID identifies this simulation run in summaries and logs.
func (s *Scheduler) RunID() uuid.UUID { return s.runID }

// AdvanceDay runs one full day cycle: advance the counter, clear the
// books, generate intents for every trader and asset, match and settle
// each asset sequentially, record history, and emit the day summary.
//
// An error aborts the run; the pipeline has no recoverable failures.
func (s *Scheduler) AdvanceDay() (DaySummary, error) {
	s.day++

	for _, b := range s.books {
		b.Clear()
	}

	s.gen.GenerateDay(s.led, s.reg, s.books)

	// Assets share trader cash, so deterministic replay needs a fixed
	// processing order: ascending asset id.
	for a := 0; a < s.reg.Len(); a++ {
		if err := s.eng.Settle(s.reg.Asset(market.AssetID(a)), s.books[a]); err != nil {
			return DaySummary{}, fmt.Errorf("day %d: %w", s.day, err)
		}
	}

	summary := DaySummary{Run: s.runID, Day: s.day, Assets: make([]AssetDaySummary, s.reg.Len())}
	for a := 0; a < s.reg.Len(); a++ {
		asset := s.reg.Asset(market.AssetID(a))
		asset.RecordHistory()
		summary.Assets[a] = AssetDaySummary{
			Symbol:     asset.Symbol,
			Price:      asset.LastPrice,
			TradeCount: asset.TradesLastDay,
			BuyCount:   len(asset.LastDayBuys),
			SellCount:  len(asset.LastDaySells),
		}
	}

	s.logSummary(summary)

	for _, b := range s.books {
		b.Clear()
	}

	return summary, nil
}

func (s *Scheduler) logSummary(sum DaySummary) {
	log := s.log.With(zap.String("run", s.runID.String()), zap.Int("day", sum.Day))
	for _, a := range sum.Assets {
		log.Info("asset settled",
			zap.String("symbol", a.Symbol),
			zap.Float64("price", a.Price),
			zap.Int("trades", a.TradeCount),
			zap.Int("buys", a.BuyCount),
			zap.Int("sells", a.SellCount),
		)
	}
	log.Info("end of day")
}
