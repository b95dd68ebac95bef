package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/Kaybarax/questionnaire-exercise/pkg/ports"
)

// Engine drives a questionnaire session. It fetches the document once, walks
// the questions in declaration order, gates each on its condition, and
// repeats each prompt until the answer validates.
type Engine struct {
	loader  ports.DocumentLoader
	console ports.Console
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	newID   func() string
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithIDGenerator overrides how session ids are generated when the caller
// does not supply one. Defaults to random UUIDs.
func WithIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates the session engine with its dependencies.
func NewEngine(loader ports.DocumentLoader, console ports.Console, opts ...EngineOption) *Engine {
	e := &Engine{
		loader:  loader,
		console: console,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunSession executes one complete pass over the document. sessionID may be
// empty, in which case a fresh id is generated. A Result is only produced
// once every visible question holds a validated answer; on error there is no
// partial result.
func (e *Engine) RunSession(ctx context.Context, sessionID string) (*domain.Result, error) {
	doc, err := e.loader.Load(ctx)
	if err != nil {
		// Loader failures carry their own classification; pass them through untouched.
		return nil, err
	}

	if sessionID == "" {
		sessionID = e.newID()
	}
	logger := e.logger.With("session_id", sessionID)

	answers := domain.NewAnswerSet()
	e.emitSession(ctx, e.hooks.OnSessionStart, sessionID, doc.Title, 0)
	logger.Debug("session started", "title", doc.Title, "questions", len(doc.Questions))

	e.console.Display(doc.Title)

	for _, q := range doc.Questions {
		if !ShouldDisplay(q, answers) {
			e.emitQuestion(ctx, e.hooks.OnQuestionSkipped, sessionID, q, 0, "")
			logger.Debug("question skipped", "question_id", q.ID)
			continue
		}

		answer, err := e.ask(ctx, logger, sessionID, q)
		if err != nil {
			return nil, err
		}
		answers.Record(q.ID, answer)
		e.emitQuestion(ctx, e.hooks.OnAnswerRecorded, sessionID, q, 0, "")
	}

	e.emitSession(ctx, e.hooks.OnSessionComplete, sessionID, doc.Title, answers.Len())
	logger.Debug("session complete", "answered", answers.Len())

	return domain.NewResult(sessionID, doc, answers), nil
}

// ask repeats the prompt until validation accepts the input. There is no
// retry cap; only an I/O failure from the console breaks the loop. The
// accepted answer is stored trimmed.
func (e *Engine) ask(ctx context.Context, logger *slog.Logger, sessionID string, q domain.Question) (string, error) {
	prompt := BuildPrompt(q)

	for attempt := 1; ; attempt++ {
		e.emitQuestion(ctx, e.hooks.OnQuestionShown, sessionID, q, attempt, "")

		raw, err := e.console.Prompt(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("prompt failed for question %s: %w", q.ID, err)
		}

		outcome := Validate(raw, q)
		if outcome.Valid {
			return strings.TrimSpace(raw), nil
		}

		e.console.DisplayError(outcome.Reason)
		e.emitQuestion(ctx, e.hooks.OnValidationFailed, sessionID, q, attempt, outcome.Reason)
		logger.Debug("answer rejected", "question_id", q.ID, "attempt", attempt, "reason", outcome.Reason)
	}
}

func (e *Engine) emitSession(ctx context.Context, hook func(context.Context, *domain.SessionEvent), sessionID, title string, answered int) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.SessionEvent{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Title:     title,
		Answered:  answered,
	})
}

func (e *Engine) emitQuestion(ctx context.Context, hook func(context.Context, *domain.QuestionEvent), sessionID string, q domain.Question, attempt int, reason string) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.QuestionEvent{
		Timestamp:  time.Now(),
		SessionID:  sessionID,
		QuestionID: q.ID,
		Kind:       q.Kind,
		Attempt:    attempt,
		Reason:     reason,
	})
}
