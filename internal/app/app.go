package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/config"
)

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// DefaultConfigPath is read when no other config file is requested.
const DefaultConfigPath = "./config/application.yaml"

// NewApplication loads the config file at configPath and constructs the HTTP application, ready to Run().
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return NewApplicationFromConfig(cfg)
}

// NewApplicationFromConfig constructs the application from an already loaded configuration.
// Invalid availability rules fail here rather than on the first request.
func NewApplicationFromConfig(cfg config.Application) (*Application, error) {
	r := mux.NewRouter()

	// Build dependencies (repository, services, handlers...)
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Addr is the resolved listen address.
func (a *Application) Addr() string {
	return a.srv.Addr
}

// Handler exposes the router, e.g. for httptest.
func (a *Application) Handler() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
