package internal

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/starford/seqren/internal/console"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config      *Config
	logger      *slog.Logger
	out         io.Writer
	prompter    console.Prompter
	interactive *bool
	version     string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger overrides the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithOutput sets where human-readable output goes. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(p console.Prompter) Option {
	return func(a *application) {
		a.prompter = p
	}
}

// WithInteractive overrides terminal detection on stdin.
func WithInteractive(on bool) Option {
	return func(a *application) {
		a.interactive = &on
	}
}

// WithVersion sets the version reported by the MCP server.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}

func newApplication(opts ...Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, errors.New("config is required")
	}
	if app.logger == nil {
		app.logger = NewLogger(app.config.App, os.Stderr)
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.prompter == nil {
		app.prompter = console.NewPrompterAdapter()
	}
	if app.interactive == nil {
		on := console.IsInteractive()
		app.interactive = &on
	}
	if app.version == "" {
		app.version = "dev"
	}
	return app, nil
}
