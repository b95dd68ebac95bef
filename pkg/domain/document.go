package domain

import "fmt"

// Document is a complete questionnaire definition: a title plus an ordered
// list of questions. Order is meaningful: sessions ask questions exactly in
// declaration order, and conditions are expected to reference questions that
// appear earlier.
type Document struct {
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question returns the question with the given id, if present.
func (d *Document) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Validate checks the structural rules a document must satisfy before a
// session can run against it. It reports the first violation found;
// question-level violations carry the question's 0-based position.
func (d *Document) Validate() error {
	if d.Title == "" {
		return &SchemaError{Index: -1, Reason: `missing required field "title"`}
	}
	if len(d.Questions) == 0 {
		return &SchemaError{Index: -1, Reason: `"questions" must contain at least one question`}
	}

	seen := make(map[string]int, len(d.Questions))
	for i, q := range d.Questions {
		if q.ID == "" {
			return &SchemaError{Index: i, Reason: `missing required field "id"`}
		}
		if first, ok := seen[q.ID]; ok {
			return &SchemaError{Index: i, Reason: fmt.Sprintf("duplicate id %q, first defined at questions[%d]", q.ID, first)}
		}
		seen[q.ID] = i

		if q.Text == "" {
			return &SchemaError{Index: i, Reason: `missing required field "text"`}
		}
		if q.Kind == "" {
			return &SchemaError{Index: i, Reason: `missing required field "kind"`}
		}
		if !q.Kind.Recognized() {
			return &SchemaError{Index: i, Reason: fmt.Sprintf("unrecognized kind %q", q.Kind)}
		}
		if q.Kind == KindMultipleChoice && len(q.Choices) == 0 {
			return &SchemaError{Index: i, Reason: `"choices" must be a non-empty list for MultipleChoice questions`}
		}
		if q.Condition != nil {
			if q.Condition.QuestionID == "" {
				return &SchemaError{Index: i, Reason: `condition is missing required field "questionId"`}
			}
			if len(q.Condition.ExpectedAnswers) == 0 {
				return &SchemaError{Index: i, Reason: `condition is missing required field "expectedAnswer"`}
			}
		}
	}

	return nil
}
