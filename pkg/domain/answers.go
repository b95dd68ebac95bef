package domain

// AnswerSet accumulates the validated answers of a single session, keyed by
// question id. It remembers insertion order so results can be rendered in the
// order the questions were answered. The zero value is not usable; call
// NewAnswerSet.
//
// An AnswerSet is owned by one engine invocation and is not safe for
// concurrent use.
type AnswerSet struct {
	order  []string
	values map[string]string
}

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]string)}
}

// Record stores the answer for a question id. Recording the same id again
// overwrites the previous answer but keeps its original position.
func (a *AnswerSet) Record(id, answer string) {
	if _, ok := a.values[id]; !ok {
		a.order = append(a.order, id)
	}
	a.values[id] = answer
}

// Get returns the answer recorded for id, if any.
func (a *AnswerSet) Get(id string) (string, bool) {
	answer, ok := a.values[id]
	return answer, ok
}

// Len returns the number of recorded answers.
func (a *AnswerSet) Len() int {
	return len(a.order)
}

// IDs returns the recorded question ids in insertion order.
func (a *AnswerSet) IDs() []string {
	ids := make([]string, len(a.order))
	copy(ids, a.order)
	return ids
}
