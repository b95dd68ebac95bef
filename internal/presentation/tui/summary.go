package tui

import (
	"fmt"
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

const summaryRuleWidth = 44

// RenderSummary formats a completed session as a numbered recap of every
// question that was asked and the answer it received. Output is plain text;
// coloring is left to the console so piped output stays clean.
func RenderSummary(result *domain.Result) string {
	rule := strings.Repeat("─", summaryRuleWidth)

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Summary: %s\n", result.Document.Title)
	b.WriteString("\n")

	pairs := result.Pairs()
	if len(pairs) == 0 {
		b.WriteString("No questions were answered.\n")
	}
	for i, pair := range pairs {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, pair.Question, pair.Answer)
	}

	b.WriteString(rule)
	return b.String()
}
