package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/r-4spberry/markevy/internal/config"
	"github.com/r-4spberry/markevy/internal/logging"
	"github.com/r-4spberry/markevy/internal/sim"
	"github.com/r-4spberry/markevy/tui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logPath := flag.String("log", "markevy.log", "day summary log file")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so summaries go to a file.
	logger, err := logging.NewFileLogger(*logPath)
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
		fmt.Fprintf(os.Stderr, "simulation: %v\n", err)
		os.Exit(1)
	}
	logger.Info("simulation starting",
		zap.String("run", scheduler.RunID().String()),
		zap.Int64("seed", seed),
		zap.Duration("tick_interval", cfg.TickInterval),
	)

	model := tui.NewModel(scheduler, cfg.TickInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
	if err := model.Err(); err != nil {
		logger.Error("simulation aborted", zap.Error(err))
		fmt.Fprintf(os.Stderr, "simulation aborted: %v\n", err)
		os.Exit(1)
	}
}
