package validator

import (
	"fmt"
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// ValidateReferences checks that every condition in the document can be
// satisfied in some session. The runtime is permissive about this (a condition
// that never matches simply hides its question), so the checks here exist to
// catch documents that silently lose questions:
//   - the referenced question must exist,
//   - it must be asked before the conditional question,
//   - it must itself be reachable,
//   - at least one expected answer must be a value the referenced question
//     can record.
func ValidateReferences(doc *domain.Document) error {
	index := make(map[string]int, len(doc.Questions))
	for i, q := range doc.Questions {
		index[q.ID] = i
	}

	reachable := make([]bool, len(doc.Questions))
	var problems []string

	for i, q := range doc.Questions {
		if q.Condition == nil {
			reachable[i] = true
			continue
		}

		ref := q.Condition.QuestionID
		j, ok := index[ref]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("questions[%d] '%s': condition references unknown question '%s'", i, q.ID, ref))
		case j >= i:
			problems = append(problems, fmt.Sprintf("questions[%d] '%s': condition references '%s', which is not asked earlier", i, q.ID, ref))
		case !reachable[j]:
			problems = append(problems, fmt.Sprintf("questions[%d] '%s': depends on '%s', which can never be shown", i, q.ID, ref))
		case !satisfiable(q.Condition.ExpectedAnswers, doc.Questions[j]):
			problems = append(problems, fmt.Sprintf("questions[%d] '%s': no expected answer matches a value '%s' can accept", i, q.ID, ref))
		default:
			reachable[i] = true
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}

	return nil
}

// satisfiable reports whether at least one expected answer is a value the
// referenced question can record. Comparison mirrors the runtime condition
// evaluator: trimmed and case-insensitive.
func satisfiable(expected []string, ref domain.Question) bool {
	switch ref.Kind {
	case domain.KindYesNo:
		for _, want := range expected {
			switch strings.ToLower(strings.TrimSpace(want)) {
			case "yes", "no", "y", "n":
				return true
			}
		}
		return false
	case domain.KindMultipleChoice:
		for _, want := range expected {
			for _, choice := range ref.Choices {
				if strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(choice)) {
					return true
				}
			}
		}
		return false
	default:
		// Free-form text can hold any answer.
		return true
	}
}
