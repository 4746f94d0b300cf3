package session

// AnswerStore is the in-session record of question id → selected option
// index. It does no validation; option range checks are the controller's
// job. The controller serializes all access, so the store itself carries
// no locking.
type AnswerStore struct {
	answers map[string]int
}

// NewAnswerStore creates an empty store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{answers: make(map[string]int)}
}

// Set records the selected option for a question, overwriting any prior
// selection (last-write-wins).
func (s *AnswerStore) Set(questionID string, optionIndex int) {
	s.answers[questionID] = optionIndex
}

// Get returns the selected option for a question and whether one exists.
func (s *AnswerStore) Get(questionID string) (int, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Len returns the number of answered questions.
func (s *AnswerStore) Len() int {
	return len(s.answers)
}

// Snapshot returns an independent copy of the current answers. Mutating
// the store after Snapshot does not affect the copy.
func (s *AnswerStore) Snapshot() map[string]int {
	out := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Clear removes all answers.
func (s *AnswerStore) Clear() {
	s.answers = make(map[string]int)
}
