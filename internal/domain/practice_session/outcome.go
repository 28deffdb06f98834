package practicesession

import (
	"sort"
	"sync"
)

// Outcome is the immutable record of how a question position was resolved:
// the answer (possibly empty for a skip or timeout), its correctness, the
// explanation returned by the scorer, and the timing split. TimeTakenSeconds
// plus TimeRemainingSeconds always equals the session's time limit.
type Outcome struct {
	Position             int    `json:"position"`
	QuestionID           string `json:"question_id"`
	SelectedAnswer       string `json:"selected_answer"`
	IsCorrect            bool   `json:"is_correct"`
	CorrectAnswer        string `json:"correct_answer"`
	Explanation          string `json:"explanation"`
	IsTimeout            bool   `json:"is_timeout"`
	TimeTakenSeconds     int    `json:"time_taken_seconds"`
	TimeRemainingSeconds int    `json:"time_remaining_seconds"`
}

// outcomeStore maps question positions to their recorded outcomes. Presence
// of a key is the "already answered" signal; a recorded outcome is never
// replaced or deleted for the lifetime of the session.
type outcomeStore struct {
	mu       sync.RWMutex
	outcomes map[int]Outcome
}

func newOutcomeStore() *outcomeStore {
	return &outcomeStore{outcomes: make(map[int]Outcome)}
}

// Record stores the outcome for its position. It reports false if the
// position already has an outcome, in which case the store is unchanged.
func (s *outcomeStore) Record(o Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.outcomes[o.Position]; exists {
		return false
	}
	s.outcomes[o.Position] = o
	return true
}

func (s *outcomeStore) Get(position int) (Outcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.outcomes[position]
	return o, ok
}

func (s *outcomeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outcomes)
}

// All returns every recorded outcome ordered by position.
func (s *outcomeStore) All() []Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]Outcome, 0, len(s.outcomes))
	for _, o := range s.outcomes {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Position < all[j].Position })
	return all
}
