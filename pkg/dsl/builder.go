package dsl

import (
	"fmt"

	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/memory"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// Builder accumulates questions in the order they should be asked.
type Builder struct {
	title     string
	questions []*QuestionBuilder
}

// New creates a new questionnaire builder.
func New(title string) *Builder {
	return &Builder{title: title}
}

// Text appends a free-form text question.
func (b *Builder) Text(id, text string) *QuestionBuilder {
	return b.add(domain.Question{ID: id, Text: text, Kind: domain.KindText})
}

// YesNo appends a yes/no question.
func (b *Builder) YesNo(id, text string) *QuestionBuilder {
	return b.add(domain.Question{ID: id, Text: text, Kind: domain.KindYesNo})
}

// Choice appends a multiple-choice question.
func (b *Builder) Choice(id, text string, choices ...string) *QuestionBuilder {
	return b.add(domain.Question{ID: id, Text: text, Kind: domain.KindMultipleChoice, Choices: choices})
}

func (b *Builder) add(q domain.Question) *QuestionBuilder {
	qb := &QuestionBuilder{question: q, builder: b}
	b.questions = append(b.questions, qb)
	return qb
}

// Document compiles the declared questions into a document. The document is
// not validated; use Build for a validated loader.
func (b *Builder) Document() *domain.Document {
	doc := &domain.Document{
		Title:     b.title,
		Questions: make([]domain.Question, 0, len(b.questions)),
	}
	for _, qb := range b.questions {
		doc.Questions = append(doc.Questions, qb.question)
	}
	return doc
}

// Build compiles the questionnaire into a memory loader, validating it
// against the document schema.
func (b *Builder) Build() (*memory.Loader, error) {
	loader, err := memory.New(b.Document())
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}
