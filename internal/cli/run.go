package cli

import (
	"context"
	"fmt"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/Kaybarax/questionnaire-exercise/internal/presentation/tui"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/terminal"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	File      string
	SessionID string
	Debug     bool
	Plain     bool
}

// Execute handles the 'run' command logic: build the engine around a terminal
// console, then loop sessions until the user is done.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	interactive := !opts.Plain && stdoutIsTerminal()
	if interactive {
		tui.PrintBanner()
	}

	var consoleOpts []terminal.Option
	if interactive {
		consoleOpts = append(consoleOpts, terminal.WithRenderer(tui.NewRenderer()))
	}
	console := terminal.New(consoleOpts...)
	defer console.Close()

	engineOpts := []questionnaire.Option{
		questionnaire.WithConsole(console),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, questionnaire.WithLogger(logger))
		engineOpts = append(engineOpts, questionnaire.WithLifecycleHooks(createDebugHooks(logger)))
	}

	engine, err := questionnaire.New(opts.File, engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing questionnaire: %w", err)
	}

	return RunSessions(context.Background(), engine, console, opts, logger)
}
