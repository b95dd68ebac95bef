package testutils

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// ScriptedConsole is a ports.Console that replays queued input lines and
// records everything shown to the user. Once the script is exhausted, Prompt
// returns io.EOF, mirroring a closed input stream.
type ScriptedConsole struct {
	Inputs []string

	Prompts   []string
	Displayed []string
	Errors    []string
	Closed    bool

	next int
}

// NewScriptedConsole queues the given input lines.
func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{Inputs: inputs}
}

// Prompt records the message and pops the next scripted line.
func (c *ScriptedConsole) Prompt(ctx context.Context, message string) (string, error) {
	c.Prompts = append(c.Prompts, message)
	if c.next >= len(c.Inputs) {
		return "", io.EOF
	}
	line := c.Inputs[c.next]
	c.next++
	return line, nil
}

// Display records an informational message.
func (c *ScriptedConsole) Display(message string) {
	c.Displayed = append(c.Displayed, message)
}

// DisplayError records a rejection or failure message.
func (c *ScriptedConsole) DisplayError(message string) {
	c.Errors = append(c.Errors, message)
}

// Close marks the console closed.
func (c *ScriptedConsole) Close() error {
	c.Closed = true
	return nil
}

// Doc builds a document from the given questions and fails the test
// immediately if it violates the schema.
func Doc(t *testing.T, title string, questions ...domain.Question) *domain.Document {
	t.Helper()
	doc := &domain.Document{Title: title, Questions: questions}
	require.NoError(t, doc.Validate(), "test document must be schema-valid")
	return doc
}

// Text returns a free-form question.
func Text(id, text string) domain.Question {
	return domain.Question{ID: id, Text: text, Kind: domain.KindText}
}

// YesNo returns a yes/no question.
func YesNo(id, text string) domain.Question {
	return domain.Question{ID: id, Text: text, Kind: domain.KindYesNo}
}

// Choice returns a multiple-choice question.
func Choice(id, text string, choices ...string) domain.Question {
	return domain.Question{ID: id, Text: text, Kind: domain.KindMultipleChoice, Choices: choices}
}

// When gates q on an earlier answer and returns the modified copy.
func When(q domain.Question, questionID string, expected ...string) domain.Question {
	q.Condition = &domain.Condition{QuestionID: questionID, ExpectedAnswers: expected}
	return q
}
