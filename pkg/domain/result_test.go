package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultPairs_InsertionOrder(t *testing.T) {
	doc := validDocument()
	answers := NewAnswerSet()
	answers.Record("name", "Alice")
	answers.Record("pets", "yes")
	answers.Record("kind", "Dog")

	pairs := NewResult("s-1", doc, answers).Pairs()

	assert.Equal(t, []Pair{
		{Question: "What is your name?", Answer: "Alice"},
		{Question: "Do you have pets?", Answer: "yes"},
		{Question: "What kind of pet?", Answer: "Dog"},
	}, pairs)
}

func TestResultPairs_OmitsUnresolvableIDs(t *testing.T) {
	doc := validDocument()
	answers := NewAnswerSet()
	answers.Record("name", "Alice")
	answers.Record("ghost", "boo")
	answers.Record("pets", "no")

	pairs := NewResult("s-2", doc, answers).Pairs()

	assert.Len(t, pairs, 2)
	assert.Equal(t, "Alice", pairs[0].Answer)
	assert.Equal(t, "no", pairs[1].Answer)
}

func TestResultPairs_Empty(t *testing.T) {
	pairs := NewResult("s-3", validDocument(), NewAnswerSet()).Pairs()
	assert.Empty(t, pairs)
}
