package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/session"
	"github.com/justinjohnso-itp/lane-courier/internal/storage"
)

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// buildSession wires a simulation session from the global flags.
// Returns the session and the backing store; the store may be nil when
// the database could not be opened (the run still works, scores are lost).
func buildSession(preset string, logger *log.Logger) (*session.Session, *storage.Store, error) {
	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
		logger.Debug("seed resolved from clock", "seed", flagSeed)
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if preset != "" {
		p := config.ParsePreset(preset)
		if p == "" {
			return nil, nil, fmt.Errorf("unknown difficulty preset %q", preset)
		}
		config.ApplyPreset(&cfg, p)
	}

	catalog, err := content.Load(flagCatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, p := range catalog.Problems() {
		logger.Warn("catalog problem", "detail", p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, scores will not persist", "error", err)
		store = nil
	}

	runtime := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var scoreStore session.ScoreStore
	if store != nil {
		scoreStore = store
	}
	sess := session.New(cfg, catalog, runtime, scoreStore, logger)
	return sess, store, nil
}
