package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Kaybarax/questionnaire-exercise/internal/logging"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the Stdout flow UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isInterrupted reports whether err is the user walking away rather than a
// real failure: a cancelled context or the input stream closing under us.
func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(ctx context.Context, e *domain.SessionEvent) {
			logger.Debug("Session Start", "session_id", e.SessionID, "title", e.Title)
		},
		OnQuestionShown: func(ctx context.Context, e *domain.QuestionEvent) {
			logger.Debug("Question Shown", "question_id", e.QuestionID, "kind", e.Kind, "attempt", e.Attempt)
		},
		OnQuestionSkipped: func(ctx context.Context, e *domain.QuestionEvent) {
			logger.Debug("Question Skipped", "question_id", e.QuestionID)
		},
		OnValidationFailed: func(ctx context.Context, e *domain.QuestionEvent) {
			logger.Debug("Validation Failed", "question_id", e.QuestionID, "attempt", e.Attempt, "reason", e.Reason)
		},
		OnAnswerRecorded: func(ctx context.Context, e *domain.QuestionEvent) {
			logger.Debug("Answer Recorded", "question_id", e.QuestionID)
		},
		OnSessionComplete: func(ctx context.Context, e *domain.SessionEvent) {
			logger.Debug("Session Complete", "session_id", e.SessionID, "answered", e.Answered)
		},
	}
}
