package memory

import (
	"context"
	"fmt"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// Loader implements ports.DocumentLoader from a document already in memory.
type Loader struct {
	doc *domain.Document
}

// New creates a Loader serving the provided document. The document is
// validated up front so a session never starts against a broken definition.
func New(doc *domain.Document) (*Loader, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is required")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &Loader{doc: doc}, nil
}

// NewFromQuestions builds the document inline from its parts.
// This improves DX for tests and embedded use.
func NewFromQuestions(title string, questions ...domain.Question) (*Loader, error) {
	return New(&domain.Document{Title: title, Questions: questions})
}

// Load returns the held document.
func (l *Loader) Load(ctx context.Context) (*domain.Document, error) {
	return l.doc, nil
}
