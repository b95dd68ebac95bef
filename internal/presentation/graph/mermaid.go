package graph

import (
	"fmt"
	"strings"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string for a
// questionnaire document. It applies semantic styling:
// - Title: ((Circle))
// - Text: [Rectangle]
// - YesNo: {Diamond}
// - MultipleChoice: [/Parallelogram/]
// Solid arrows follow the order questions are asked in; dashed labeled arrows
// show which earlier answer a conditional question depends on.
func GenerateMermaid(doc *domain.Document) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	sb.WriteString(fmt.Sprintf("    title((\"%s\"))\n", escapeMermaidLabel(doc.Title)))

	prev := "title"
	for _, q := range doc.Questions {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(q.ID)

		// Node shape based on Kind
		opener, closer := "[", "]"
		switch q.Kind {
		case domain.KindYesNo:
			opener, closer = "{", "}" // Diamond (binary answer)
		case domain.KindMultipleChoice:
			opener, closer = "[/", "/]" // Parallelogram (pick one)
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(q.ID), closer))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, safeID))

		// Condition dependency
		if q.Condition != nil {
			safeFrom := sanitizeMermaidID(q.Condition.QuestionID)
			label := escapeMermaidLabel(strings.Join(q.Condition.ExpectedAnswers, ", "))
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", safeFrom, label, safeID))
		}

		prev = safeID
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// escapeMermaidLabel replaces double quotes so labels cannot break out of the
// Mermaid string syntax.
func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
