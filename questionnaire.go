package questionnaire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/Kaybarax/questionnaire-exercise/internal/runtime"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/file"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/terminal"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/Kaybarax/questionnaire-exercise/pkg/ports"
)

// Engine is the high-level entry point for the questionnaire library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.DocumentLoader
	console ports.Console
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	newID   func() string
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DocumentLoader, bypassing the default file
// loader.
func WithLoader(l ports.DocumentLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithConsole injects a custom Console. Defaults to the interactive terminal
// console on stdin/stdout.
func WithConsole(c ports.Console) Option {
	return func(e *Engine) {
		e.console = c
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithIDGenerator overrides how session ids are generated when RunSession is
// called without one.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// New initializes a questionnaire Engine.
// By default, it reads the questionnaire document from the file at path.
// If the WithLoader option is provided, path can be empty and the file
// loader is skipped.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		eng.Name = filepath.Base(path)
		eng.loader = file.New(path)
	} else if path != "" {
		// With a custom loader, path only serves as a descriptive label.
		eng.Name = filepath.Base(path)
	}

	if eng.console == nil {
		eng.console = terminal.New()
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which
	// would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("questionnaire", eng.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithIDGenerator(eng.newID),
	}

	eng.runtime = runtime.NewEngine(eng.loader, eng.console, runtimeOpts...)

	return eng, nil
}

// RunSession executes one complete pass over the questionnaire. sessionID may
// be empty, in which case a fresh id is generated.
func (e *Engine) RunSession(ctx context.Context, sessionID string) (*domain.Result, error) {
	return e.runtime.RunSession(ctx, sessionID)
}

// Document loads and returns the questionnaire document without running a
// session. Useful for validation and tooling.
func (e *Engine) Document(ctx context.Context) (*domain.Document, error) {
	return e.loader.Load(ctx)
}

// Loader returns the underlying DocumentLoader used by the engine.
func (e *Engine) Loader() ports.DocumentLoader {
	return e.loader
}
