package domain

// Kind identifies how a question is asked and how its answer is validated.
type Kind string

const (
	// KindText accepts any non-empty free-form answer.
	KindText Kind = "Text"
	// KindYesNo accepts yes/no (or the shorthands y/n), case-insensitively.
	KindYesNo Kind = "YesNo"
	// KindMultipleChoice accepts exactly one of the declared choices.
	KindMultipleChoice Kind = "MultipleChoice"
)

// Recognized reports whether k is one of the supported question kinds.
func (k Kind) Recognized() bool {
	switch k {
	case KindText, KindYesNo, KindMultipleChoice:
		return true
	}
	return false
}

// Condition gates a question on an answer recorded earlier in the session.
// The question is shown only when the answer stored under QuestionID matches
// one of ExpectedAnswers (compared trimmed and case-insensitively).
//
// On the wire "expectedAnswer" may be a single string; loaders normalize it
// into a one-element slice.
type Condition struct {
	QuestionID      string   `json:"questionId" yaml:"questionId"`
	ExpectedAnswers []string `json:"expectedAnswer" yaml:"expectedAnswer"`
}

// Question is a single prompt in a questionnaire document.
type Question struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Kind Kind   `json:"kind" yaml:"kind"`

	// Choices holds the accepted answers for MultipleChoice questions.
	// Matching against them is exact, including case.
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`

	// Condition, when set, gates this question on an earlier answer.
	Condition *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
}
