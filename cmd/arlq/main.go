// Package main is the entry point for arlq.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/game"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/telemetry"
	"github.com/samdwyer/arlq/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_ARLQ_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	cfg, err := parseFlags(os.Args[1:], catalog, time.Now().Unix(), os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	logger, err := newLogger(os.Getenv("ARLQ_LOG_FILE"))
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Sync()
	cfg.Logger = logger

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx,
		attribute.Int64("arlq.seed", cfg.Seed),
		attribute.Int("arlq.stage", cfg.Stage),
	)
	switch {
	case errors.Is(err, telemetry.ErrNoEndpoint):
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	res, err := run(ctx, cfg, catalog, theme)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
	report(res)
}

// run owns the terminal for the length of one session.
func run(ctx context.Context, cfg game.Config, catalog *gamedata.Catalog, theme gamedata.Theme) (game.Result, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return game.Result{}, fmt.Errorf("failed to initialize screen: %w", err)
	}
	term := ui.NewTerminal(screen, theme)
	defer term.Close()

	params := cfg.Params()
	if err := term.CheckSize(params.Width, params.Height); err != nil {
		return game.Result{}, err
	}

	g, err := game.New(cfg, term, catalog)
	if err != nil {
		return game.Result{}, err
	}
	return g.Run(ctx)
}

func report(res game.Result) {
	switch {
	case res.Victory:
		fmt.Println("Victory!")
	case res.Quit:
		fmt.Println("Quit.")
	default:
		fmt.Println("Game over.")
	}
	fmt.Printf("Turns: %d  Level: %d\n", res.Turns, res.Level)
	if res.SeedString != "" {
		fmt.Printf("SEED: %s\n", res.SeedString)
	}
}

// newLogger writes JSON logs to path, or discards them when path is empty.
// The terminal belongs to the game while it runs.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ARLQ_API_KEY")
	if apiKey == "" {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_ARLQ_DATASET")
	if dataset == "" {
		dataset = "arlq" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
