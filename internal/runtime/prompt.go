package runtime

import (
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// BuildPrompt renders the text shown when a question is asked. YesNo
// questions carry an inline answer hint; MultipleChoice questions list their
// choices in declaration order.
func BuildPrompt(q domain.Question) string {
	switch q.Kind {
	case domain.KindYesNo:
		return q.Text + " (yes/no)"
	case domain.KindMultipleChoice:
		return q.Text + "\nChoices: " + strings.Join(q.Choices, ", ")
	}
	return q.Text
}
