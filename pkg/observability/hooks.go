package observability

import (
	"context"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// CombineHooks merges several hook sets into a single one. For each lifecycle
// moment, every non-nil callback is invoked in the order the sets were given.
func CombineHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks
	for _, hooks := range sets {
		combined = domain.LifecycleHooks{
			OnSessionStart:     chainSession(combined.OnSessionStart, hooks.OnSessionStart),
			OnQuestionShown:    chainQuestion(combined.OnQuestionShown, hooks.OnQuestionShown),
			OnQuestionSkipped:  chainQuestion(combined.OnQuestionSkipped, hooks.OnQuestionSkipped),
			OnValidationFailed: chainQuestion(combined.OnValidationFailed, hooks.OnValidationFailed),
			OnAnswerRecorded:   chainQuestion(combined.OnAnswerRecorded, hooks.OnAnswerRecorded),
			OnSessionComplete:  chainSession(combined.OnSessionComplete, hooks.OnSessionComplete),
		}
	}
	return combined
}

func chainSession(a, b func(context.Context, *domain.SessionEvent)) func(context.Context, *domain.SessionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.SessionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainQuestion(a, b func(context.Context, *domain.QuestionEvent)) func(context.Context, *domain.QuestionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.QuestionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
