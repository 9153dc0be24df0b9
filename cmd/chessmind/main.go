// chessmind is a terminal chess game: human versus human, human versus
// engine, or engine versus engine, on top of the chessmind rules engine
// and alpha-beta search.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kjansen/chessmind/internal/config"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chessmind version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(&cfg)

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *perftDepth > 0 {
		if err := runPerft(cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
		return
	}

	st, err := newState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "position: %v\n", err)
		os.Exit(1)
	}

	app, err := newApp(st, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := app.run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if *depth > 0 {
		cfg.SearchDepth = *depth
	}
	if *moveTimeMs > 0 {
		cfg.MoveTimeMs = *moveTimeMs
	}
	if *perftWorkers > 0 {
		cfg.PerftWorkers = *perftWorkers
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
}

// newLogger builds a production zap logger writing to the given file.
func newLogger(path string) (*zap.SugaredLogger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// newState builds the starting game state from the -fen flag.
func newState() (*game.State, error) {
	if *startFEN == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(*startFEN)
}

// runPerft prints a perft divide table for the start position.
func runPerft(cfg config.Config, logger *zap.SugaredLogger) error {
	board := engine.NewInitialBoard()
	if *startFEN != "" {
		var err error
		board, err = engine.NewBoardFromFEN(*startFEN)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	entries := engine.ParallelDivide(board, *perftDepth, cfg.PerftWorkers)
	var total uint64
	for _, entry := range entries {
		fmt.Printf("%s: %d\n", entry.Move, entry.Nodes)
		total += entry.Nodes
	}
	elapsed := time.Since(start)
	fmt.Printf("\nperft(%d) = %d in %s\n", *perftDepth, total, elapsed)

	logger.Infow("perft finished",
		"depth", *perftDepth,
		"nodes", total,
		"workers", cfg.PerftWorkers,
		"elapsed", elapsed,
	)
	return nil
}

// newRand builds the random-AI generator from the -seed flag.
func newRand() *rand.Rand {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}
