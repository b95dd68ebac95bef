package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/Kaybarax/questionnaire-exercise/internal/presentation/tui"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/terminal"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/Kaybarax/questionnaire-exercise/pkg/ports"
)

// RunSessions drives the interactive loop: run a session, show the recap,
// offer another round. The configured session id only applies to the first
// round; every later one gets a fresh generated id.
func RunSessions(ctx context.Context, engine *questionnaire.Engine, console ports.Console, opts RunOptions, logger *slog.Logger) error {
	sessionID := opts.SessionID

	for {
		result, err := engine.RunSession(ctx, sessionID)
		if err != nil {
			retry, err := handleSessionError(ctx, console, err)
			if err != nil || !retry {
				return err
			}
			continue
		}

		console.Display(tui.RenderSummary(result))
		logger.Info("Session Complete", "session_id", result.SessionID, "answered", result.Answers.Len())

		if !promptYesNo(ctx, console, "Would you like to start a new session? (yes/no)") {
			console.Display(terminal.DefaultFarewell)
			return nil
		}
		sessionID = ""
	}
}

// handleSessionError decides whether a failed session is fatal, ignorable,
// or worth offering a retry for.
func handleSessionError(ctx context.Context, console ports.Console, err error) (bool, error) {
	if domain.IsConfigError(err) {
		// A broken questionnaire will not fix itself between attempts.
		console.DisplayError(fmt.Sprintf("Cannot run questionnaire: %v", err))
		return false, err
	}
	if isInterrupted(err) {
		return false, nil
	}
	console.DisplayError(fmt.Sprintf("Something went wrong: %v", err))
	return promptYesNo(ctx, console, "Try again? (yes/no)"), nil
}

// promptYesNo asks a meta question outside the questionnaire flow. Anything
// that is not an affirmative, including a failed read, counts as no.
func promptYesNo(ctx context.Context, console ports.Console, message string) bool {
	answer, err := console.Prompt(ctx, message)
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
