package runtime

import (
	"fmt"
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// Validation messages shown to the user. The wording is part of the
// interactive contract; tests assert on it verbatim.
const (
	msgEmptyInput   = "Input cannot be empty. Please provide an answer."
	msgInvalidYesNo = "Invalid input. Expected: yes, no, y, or n (case-insensitive). Please try again."
	msgNoChoices    = "No choices defined for this question."
)

// Outcome is the result of validating one input line against one question.
type Outcome struct {
	Valid  bool
	Reason string
}

// Accept returns a passing outcome.
func Accept() Outcome {
	return Outcome{Valid: true}
}

// Reject returns a failing outcome carrying the reason shown to the user.
func Reject(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Validate checks a raw input line against the question's kind. The empty
// check runs first for every kind; kind-specific rules then apply to the
// trimmed input. YesNo matching is case-insensitive, MultipleChoice matching
// is exact.
func Validate(raw string, q domain.Question) Outcome {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Reject(msgEmptyInput)
	}

	switch q.Kind {
	case domain.KindText:
		return Accept()

	case domain.KindYesNo:
		switch strings.ToLower(trimmed) {
		case "yes", "no", "y", "n":
			return Accept()
		}
		return Reject(msgInvalidYesNo)

	case domain.KindMultipleChoice:
		if len(q.Choices) == 0 {
			return Reject(msgNoChoices)
		}
		for _, choice := range q.Choices {
			if trimmed == choice {
				return Accept()
			}
		}
		return Reject(fmt.Sprintf("Invalid choice. Expected one of: %s. Please try again.", strings.Join(q.Choices, ", ")))
	}

	return Reject(fmt.Sprintf("Unknown question type: %s", q.Kind))
}
