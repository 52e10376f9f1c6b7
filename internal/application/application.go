package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/eugenenazirov/scanner-map/internal/api"
	"github.com/eugenenazirov/scanner-map/internal/config"
	"github.com/eugenenazirov/scanner-map/internal/geocoding"
	"github.com/eugenenazirov/scanner-map/internal/settings"
	"github.com/eugenenazirov/scanner-map/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	cfg     config.Config
	storage *storage.MemoryStore
	loader  *geocoding.Loader
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
	enrich  sync.Once
	ready   atomic.Bool
}

// New builds and validates the default settings tree and wires every dependency.
// The returned App is not ready until Enrich has run.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store, err := storage.NewMemoryStoreFrom(settings.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to build settings: %w", err)
	}

	app := &App{
		cfg:     cfg,
		storage: store,
		logger:  logger,
	}

	if cfg.GeocodingURL != "" {
		app.loader = geocoding.NewLoader(geocoding.NewClient(cfg.GeocodingURL), logger)
	}

	handler := api.NewHandler(store, api.WithReadiness(app.ready.Load))
	app.router = api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	rootHandler, err := BuildRootHandler(app.router)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP handler: %w", err)
	}
	app.server = NewServer(cfg, rootHandler)

	return app, nil
}

// Enrich loads geocoding credentials into the settings, bounded by the configured
// timeout, then marks the application ready. Failures leave the keys unset and
// never abort startup. The load runs once; concurrent callers block until it
// finishes and later calls return immediately.
func (a *App) Enrich(ctx context.Context) {
	a.enrich.Do(func() {
		defer a.ready.Store(true)

		if a.loader == nil {
			a.logger.Info("geocoding URL not configured, skipping credential load")
			return
		}

		ctx, cancel := context.WithTimeout(ctx, a.cfg.EnrichTimeout)
		defer cancel()

		a.loader.Load(ctx, a.storage)
	})
}

// Ready reports whether Enrich has completed.
func (a *App) Ready() bool {
	return a.ready.Load()
}

// Settings returns a snapshot of the published settings tree.
func (a *App) Settings() settings.AppConfig {
	return a.storage.Snapshot()
}

// BuildRootHandler constructs the root HTTP handler that serves the map page, static
// assets and API routes.
func BuildRootHandler(apiHandler http.Handler) (http.Handler, error) {
	mux := http.NewServeMux()

	staticPath, err := resolveProjectPath(filepath.Join("web", "static"))
	if err != nil {
		return nil, err
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath))))
	mux.Handle("/api/", apiHandler)

	indexPath, err := resolveProjectPath(filepath.Join("web", "templates", "index.html"))
	if err != nil {
		return nil, err
	}
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, indexPath)
	}))

	return mux, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.Strings("geocoding_providers", a.storage.Snapshot().Geocoding.AvailableProviders()),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
