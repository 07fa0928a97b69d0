package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/r-4spberry/markevy/internal/config"
	"github.com/r-4spberry/markevy/internal/logging"
	"github.com/r-4spberry/markevy/internal/sim"
)

// simd runs the simulation without a UI: a fixed number of days as fast
// as possible, one summary per day on the structured log.
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	days := flag.Int("days", 100, "number of days to simulate")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scheduler, err := sim.NewScheduler(cfg.SimConfig(), rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		logger.Fatal("simulation setup failed", zap.Error(err))
	}
	logger.Info("simulation starting",
		zap.String("run", scheduler.RunID().String()),
		zap.Int64("seed", seed),
		zap.Int("days", *days),
	)

	for d := 0; d < *days; d++ {
		if _, err := scheduler.AdvanceDay(); err != nil {
			logger.Fatal("simulation aborted", zap.Error(err))
		}
	}

	logger.Info("simulation finished", zap.Int("days", scheduler.Day()))
}
