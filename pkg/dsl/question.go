package dsl

import (
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/memory"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// QuestionBuilder provides a fluent API for configuring a question. Its
// Text/YesNo/Choice methods delegate back to the parent builder so question
// declarations chain naturally.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// When makes the question conditional: it is only asked when the answer
// recorded for questionID matches one of the expected values.
func (q *QuestionBuilder) When(questionID string, expected ...string) *QuestionBuilder {
	q.question.Condition = &domain.Condition{
		QuestionID:      questionID,
		ExpectedAnswers: expected,
	}
	return q
}

// Text appends a free-form text question to the questionnaire.
func (q *QuestionBuilder) Text(id, text string) *QuestionBuilder {
	return q.builder.Text(id, text)
}

// YesNo appends a yes/no question to the questionnaire.
func (q *QuestionBuilder) YesNo(id, text string) *QuestionBuilder {
	return q.builder.YesNo(id, text)
}

// Choice appends a multiple-choice question to the questionnaire.
func (q *QuestionBuilder) Choice(id, text string, choices ...string) *QuestionBuilder {
	return q.builder.Choice(id, text, choices...)
}

// Build compiles the whole questionnaire into a memory loader.
func (q *QuestionBuilder) Build() (*memory.Loader, error) {
	return q.builder.Build()
}

// Question returns the underlying domain.Question.
// This is primarily used by the Builder, but exposed for advanced usage.
func (q *QuestionBuilder) Question() domain.Question {
	return q.question
}
