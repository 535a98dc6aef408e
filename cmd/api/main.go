package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"textcompare/internal/compare"
	"textcompare/internal/config"
	"textcompare/internal/http"
	"textcompare/internal/lemmatizer"
	"textcompare/internal/normalize"
	"textcompare/internal/service"
	"textcompare/internal/settings"
	"textcompare/internal/storage"
	"textcompare/internal/theme"
	"textcompare/internal/tokenizer"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// One server per database
	lock, err := storage.AcquireLock(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to lock database: %v", err)
	}
	slog.Debug("Database lock acquired", "lock", lock.Path())
	defer func() {
		_ = lock.Release()
	}()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx := context.Background()

	// Restore the persisted theme, repairing it if needed
	themes := theme.NewService(storage.NewKVRepo(db), cfg.DefaultTheme)
	current, err := themes.Init(ctx)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}
	slog.Info("Theme loaded", "theme", current)

	prefs := settings.New()
	tok := tokenizer.New(normalize.New(cfg.IgnoreCharacters))

	state := compare.New(tok, prefs, newLemmatizer(cfg))
	stopWatching := state.Watch(prefs)
	defer stopWatching()

	// Create router with dependencies
	deps := &http.Deps{
		Comparison:  service.NewComparisonService(state),
		Preferences: service.NewPreferencesService(prefs, themes, state),
		DB:          db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

// newLemmatizer returns the configured backend, or nil when none is usable.
func newLemmatizer(cfg *config.Config) compare.Lemmatizer {
	switch cfg.LemmatizerBackend {
	case config.BackendStem:
		slog.Info("Lemmatizer configured", "backend", config.BackendStem)
		return lemmatizer.NewStemmer()
	default:
		if cfg.LemmatizerURL == "" {
			slog.Warn("LEMMATIZER_URL is not set, lemmatization is disabled")
			return nil
		}
		slog.Info("Lemmatizer configured", "backend", config.BackendRemote,
			"base_url", cfg.LemmatizerURL, "timeout", cfg.LemmatizerTimeout)
		return lemmatizer.NewClient(cfg.LemmatizerURL, cfg.LemmatizerTimeout)
	}
}
