package sim

import "github.com/r-4spberry/markevy/internal/intent"

// Config holds construction-time configuration for the simulation.
type Config struct {
	// Traders is the number of trader agents.
	Traders int
	// InitialCash is each trader's starting cash balance.
	InitialCash float64
	// InitialShares is each trader's starting holding of every asset.
	InitialShares uint
	// CompaniesPerCategory is how many assets are listed in each of the
	// five categories.
	CompaniesPerCategory int
	// DayZeroPrice seeds every asset's last price and history.
	DayZeroPrice float64
	// Intent configures order price sampling.
	Intent intent.Config
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Traders:              50,
		InitialCash:          10_000.0,
		InitialShares:        50,
		CompaniesPerCategory: 3,
		DayZeroPrice:         100.0,
		Intent:               intent.DefaultConfig(),
	}
}
