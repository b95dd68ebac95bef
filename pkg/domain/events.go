package domain

import (
	"context"
	"time"
)

// SessionEvent describes a session-level lifecycle moment.
type SessionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Title     string    `json:"title"`
	Answered  int       `json:"answered"`
}

// QuestionEvent describes a question-level lifecycle moment.
type QuestionEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	QuestionID string    `json:"question_id"`
	Kind       Kind      `json:"kind"`

	// Attempt is the 1-based prompt attempt; zero when not applicable.
	Attempt int `json:"attempt,omitempty"`
	// Reason carries the rejection message on validation failures.
	Reason string `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// All fields are optional; nil hooks are skipped.
type LifecycleHooks struct {
	OnSessionStart     func(context.Context, *SessionEvent)
	OnQuestionShown    func(context.Context, *QuestionEvent)
	OnQuestionSkipped  func(context.Context, *QuestionEvent)
	OnValidationFailed func(context.Context, *QuestionEvent)
	OnAnswerRecorded   func(context.Context, *QuestionEvent)
	OnSessionComplete  func(context.Context, *SessionEvent)
}
