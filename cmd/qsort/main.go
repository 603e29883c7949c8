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
	"quantum-lab/qsort"
	"quantum-lab/simulator"
)

// defaultNumbers is the classic demo list.
var defaultNumbers = []int{4, 2, 47, 1, 5, 51, 1}

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

	// 2. Input list: CLI arguments or the demo default
	numbers := defaultNumbers
	if len(os.Args) > 1 {
		parsed, err := internal.ParseNumbers(os.Args[1:])
		if err != nil {
			return err
		}
		numbers = parsed
	}

	// 3. Backend & Comparator
	stats := observability.NewExecutionStats()
	backend := simulator.NewLocal(log, stats, config.Seed)
	comparator := qsort.NewComparator(backend, log)
	renderer := internal.NewRenderer(os.Stdout, config.Colours)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Sort
	fmt.Println("🌟 Welcome to Quantum Bubble Sort! 🌟")
	fmt.Println("📋 Original list:", numbers)
	fmt.Printf("\n🔄 Starting quantum sort for: %v\n", numbers)

	sorted, err := qsort.BubbleSort(ctx, comparator, numbers, func(cmp qsort.Comparison, values []int) {
		fmt.Printf("\n🔬 Circuit for comparison between %d and %d:\n", cmp.A, cmp.B)
		fmt.Println("Initial state: |0⟩")
		if cmp.Greater {
			fmt.Println("After X gate: |1⟩ (a > b)")
		} else {
			fmt.Println("No X gate applied: |0⟩ (a ≤ b)")
		}
		fmt.Println("Measurement result:", cmp.Outcome)
		fmt.Print(cmp.Circuit.Draw())
		if cmp.Greater {
			fmt.Printf("🔄 Swap performed: %v\n", values)
		}
	})
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	fmt.Println("\n✨ Sorted list:", sorted)
	renderer.Stats(stats.Snapshot())
	return nil
}
