package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/abadojack/whatlanggo"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"quantum-lab/internal"
	"quantum-lab/observability"
	"quantum-lab/services"
	"quantum-lab/simulator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the simulator, the codec service and the renderer, then
// processes one interactive message. Keeping the logic out of main
// ensures defers execute and keeps the entry point testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Backend & Service
	stats := observability.NewExecutionStats()
	backend := simulator.NewLocal(log, stats, config.Seed)
	service, err := services.NewEncodingService(backend, config.ChunkSize, log)
	if err != nil {
		return fmt.Errorf("service setup failed: %w", err)
	}
	renderer := internal.NewRenderer(os.Stdout, config.Colours)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Interactive Input
	fmt.Println("\n🌟 Welcome to Quantum Message Processor 🌟")
	fmt.Print("✍️  Enter your message: ")
	reader := bufio.NewReader(os.Stdin)
	message, err := reader.ReadString('\n')
	if err != nil && message == "" {
		return fmt.Errorf("reading message failed: %w", err)
	}
	message = strings.TrimRight(message, "\r\n")

	// 5. Round Trip
	renderer.Header("🔬 Quantum Message Processing")
	report, err := service.Process(ctx, message)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	// 6. Display
	for i, chunk := range report.Chunks {
		renderer.Chunk(i, chunk)
	}
	renderer.Circuits(report.Chunks)
	renderer.Summary(report.Original, report.Decoded, detectLanguage(report.Decoded), len(report.Chunks))
	renderer.Stats(stats.Snapshot())

	return nil
}

// detectLanguage labels the decoded text, empty when nothing was typed.
func detectLanguage(text string) string {
	if text == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	return fmt.Sprintf("%s (%s)", info.Lang.String(), info.Lang.Iso6391())
}
