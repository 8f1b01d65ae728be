// Package app provides the application context and dependency management
// for the genreforge CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/genreforge/genreforge"
	"github.com/genreforge/genreforge/internal/cmd/globals"
	"github.com/genreforge/genreforge/pkg/errors"
)

// App represents the genreforge application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// forge instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Global flag storage bound by the root command
	flags *globals.Flags

	// Logger
	logger *zerolog.Logger

	// Forge instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	forge genreforge.Forge
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("cli", "load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Forge returns the forge instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Forge() (genreforge.Forge, error) {
	a.mu.RLock()
	if a.forge != nil {
		f := a.forge
		a.mu.RUnlock()
		return f, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.forge != nil {
		return a.forge, nil
	}

	f, err := genreforge.New(a.buildForgeOptions()...)
	if err != nil {
		return nil, errors.NewConfigError("forge", "create instance", err)
	}

	a.forge = f
	return f, nil
}

// ForgeWithOptions returns a new forge instance with custom options.
// This is useful for commands that need a configuration different from
// the default app instance (e.g., generate with an explicit seed).
func (a *App) ForgeWithOptions(opts ...genreforge.Option) (genreforge.Forge, error) {
	f, err := genreforge.New(opts...)
	if err != nil {
		return nil, errors.NewConfigError("forge", "create instance with custom options", err)
	}
	return f, nil
}

// Shutdown performs graceful shutdown of the application. The forge keeps
// its catalog in memory only, so there are currently no resources to
// release.
func (a *App) Shutdown(_ context.Context) error {
	return nil
}

// buildForgeOptions constructs forge options from the app configuration.
func (a *App) buildForgeOptions() []genreforge.Option {
	opts := []genreforge.Option{genreforge.WithLogger(a.logger)}

	if a.config.Forge != nil {
		opts = append(opts, genreforge.WithConfig(a.config.Forge))
	}

	return opts
}

// globalFlags exposes the shared display flags to output helpers.
func (a *App) globalFlags() *globals.Flags {
	return &globals.Flags{
		Verbose: a.config.Verbose,
		Quiet:   a.config.Quiet,
		NoColor: a.config.NoColor,
		Output:  a.config.Output,
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithForge sets a custom forge instance (useful for testing).
func WithForge(f genreforge.Forge) Option {
	return func(a *App) error {
		a.forge = f
		return nil
	}
}
