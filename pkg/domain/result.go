package domain

// Result is the outcome of a completed session: the full answer set together
// with the document it was collected against.
type Result struct {
	SessionID string
	Document  *Document
	Answers   *AnswerSet
}

// Pair couples a question's text with the answer it received.
type Pair struct {
	Question string
	Answer   string
}

// NewResult builds the result of a finished session.
func NewResult(sessionID string, doc *Document, answers *AnswerSet) *Result {
	return &Result{SessionID: sessionID, Document: doc, Answers: answers}
}

// Pairs resolves each recorded answer to its question text, in the order the
// answers were recorded. Answers whose question id does not resolve in the
// document are omitted.
func (r *Result) Pairs() []Pair {
	pairs := make([]Pair, 0, r.Answers.Len())
	for _, id := range r.Answers.IDs() {
		q, ok := r.Document.Question(id)
		if !ok {
			continue
		}
		answer, _ := r.Answers.Get(id)
		pairs = append(pairs, Pair{Question: q.Text, Answer: answer})
	}
	return pairs
}
