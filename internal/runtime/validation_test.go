package runtime_test

import (
	"testing"

	"github.com/Kaybarax/questionnaire-exercise/internal/runtime"
	"github.com/Kaybarax/questionnaire-exercise/internal/testutils"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

func TestValidate_EmptyInputRejectedForEveryKind(t *testing.T) {
	questions := map[string]domain.Question{
		"Text":           testutils.Text("name", "What is your name?"),
		"YesNo":          testutils.YesNo("pets", "Do you have pets?"),
		"MultipleChoice": testutils.Choice("kind", "What kind of pet?", "Dog", "Cat"),
	}

	for name, q := range questions {
		t.Run(name, func(t *testing.T) {
			for _, input := range []string{"", "   ", "\t", " \t "} {
				outcome := runtime.Validate(input, q)
				if outcome.Valid {
					t.Fatalf("expected rejection for input %q", input)
				}
				if outcome.Reason != "Input cannot be empty. Please provide an answer." {
					t.Errorf("unexpected reason: %q", outcome.Reason)
				}
			}
		})
	}
}

func TestValidate_Text(t *testing.T) {
	q := testutils.Text("name", "What is your name?")
	for _, input := range []string{"Alice", "  padded  ", "42", "yes"} {
		if outcome := runtime.Validate(input, q); !outcome.Valid {
			t.Errorf("expected %q to pass, got %q", input, outcome.Reason)
		}
	}
}

func TestValidate_YesNo(t *testing.T) {
	q := testutils.YesNo("pets", "Do you have pets?")

	tests := []struct {
		input string
		valid bool
	}{
		{"yes", true},
		{"no", true},
		{"y", true},
		{"n", true},
		{"YES", true},
		{"Yes", true},
		{"yEs", true},
		{"N", true},
		{"nO", true},
		{"  y  ", true},
		{"\tno\t", true},
		{"yep", false},
		{"nah", false},
		{"true", false},
		{"0", false},
		{"yess", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			outcome := runtime.Validate(tt.input, q)
			if outcome.Valid != tt.valid {
				t.Fatalf("input %q: expected valid=%v, got %v (%q)", tt.input, tt.valid, outcome.Valid, outcome.Reason)
			}
			if !tt.valid && outcome.Reason != "Invalid input. Expected: yes, no, y, or n (case-insensitive). Please try again." {
				t.Errorf("unexpected reason: %q", outcome.Reason)
			}
		})
	}
}

func TestValidate_MultipleChoice(t *testing.T) {
	q := testutils.Choice("kind", "What kind of pet?", "Dog", "Cat", "Bird")

	tests := []struct {
		input string
		valid bool
	}{
		{"Dog", true},
		{"Cat", true},
		{"  Bird  ", true}, // surrounding whitespace is forgiven, case is not
		{"dog", false},
		{"DOG", false},
		{"Fish", false},
		{"Do", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			outcome := runtime.Validate(tt.input, q)
			if outcome.Valid != tt.valid {
				t.Fatalf("input %q: expected valid=%v, got %v (%q)", tt.input, tt.valid, outcome.Valid, outcome.Reason)
			}
			if !tt.valid && outcome.Reason != "Invalid choice. Expected one of: Dog, Cat, Bird. Please try again." {
				t.Errorf("unexpected reason: %q", outcome.Reason)
			}
		})
	}
}

func TestValidate_MultipleChoiceWithoutChoices(t *testing.T) {
	q := domain.Question{ID: "kind", Text: "What kind of pet?", Kind: domain.KindMultipleChoice}

	outcome := runtime.Validate("anything", q)
	if outcome.Valid {
		t.Fatal("expected rejection when no choices are defined")
	}
	if outcome.Reason != "No choices defined for this question." {
		t.Errorf("unexpected reason: %q", outcome.Reason)
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	q := domain.Question{ID: "x", Text: "Pick one", Kind: "Slider"}

	outcome := runtime.Validate("anything", q)
	if outcome.Valid {
		t.Fatal("expected rejection for unknown kind")
	}
	if outcome.Reason != "Unknown question type: Slider" {
		t.Errorf("unexpected reason: %q", outcome.Reason)
	}

	// The universal empty check still runs before kind dispatch.
	if got := runtime.Validate("  ", q); got.Reason != "Input cannot be empty. Please provide an answer." {
		t.Errorf("expected the empty check first, got %q", got.Reason)
	}
}
