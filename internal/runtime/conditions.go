package runtime

import (
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// ShouldDisplay decides whether a question is shown given the answers
// recorded so far. A question without a condition is always shown. A
// condition whose referenced question has no recorded answer (unanswered,
// skipped, or absent from the document) hides the question rather than
// failing. Matching compares trimmed, lowercased values against the expected
// set.
func ShouldDisplay(q domain.Question, answers *domain.AnswerSet) bool {
	if q.Condition == nil {
		return true
	}

	recorded, ok := answers.Get(q.Condition.QuestionID)
	if !ok {
		return false
	}

	actual := normalizeAnswer(recorded)
	for _, expected := range q.Condition.ExpectedAnswers {
		if actual == normalizeAnswer(expected) {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
