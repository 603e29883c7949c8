package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"quantum-lab/internal"
	"quantum-lab/observability"
	"quantum-lab/simulator"
	"quantum-lab/superposition"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Backend
	stats := observability.NewExecutionStats()
	backend := simulator.NewLocal(log, stats, config.Seed)
	renderer := internal.NewRenderer(os.Stdout, config.Colours)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Flip
	renderer.Header("🪙 Quantum Coin Flip")
	fmt.Print(superposition.CoinFlipCircuit().Draw())

	result, err := superposition.Flip(ctx, backend, config.Shots)
	if err != nil {
		return fmt.Errorf("superposition run failed: %w", err)
	}

	// 4. Display & Report File
	fmt.Println("Measurement results:", result.Counts)
	renderer.Histogram(result.Counts, result.Shots)

	report := internal.HistogramText(result.Counts, result.Shots)
	if err := os.WriteFile(config.ReportPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing histogram report failed: %w", err)
	}
	fmt.Printf("\nHistogram saved as %q\n", config.ReportPath)

	renderer.Stats(stats.Snapshot())
	return nil
}
