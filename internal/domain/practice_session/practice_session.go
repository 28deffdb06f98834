package practicesession

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/quizpace/backend/internal/domain/questionbank"
	"github.com/quizpace/backend/internal/id"
)

// Session is the immutable description of a single timed practice run: an
// ordered question list, a per-question time budget, and a feedback mode.
// It never changes after creation; all mutable state lives in the Engine.
type Session struct {
	ID               string
	BankID           string
	Questions        []questionbank.Question
	TimeLimitSeconds int
	Mode             Mode
}

// New creates a session over all questions of the bank with DefaultConfig.
func New(bank *questionbank.Bank) *Session {
	s, _ := NewWithConfig(bank, DefaultConfig())
	return s
}

// NewWithConfig creates a session with the given configuration. Questions are
// always randomized. If MaxQuestions is set and less than the total
// available, only that many questions are included.
func NewWithConfig(bank *questionbank.Bank, config SessionConfig) (*Session, error) {
	if config.TimeLimitSeconds <= 0 {
		return nil, fmt.Errorf("time limit must be positive, got %d", config.TimeLimitSeconds)
	}
	if !config.Mode.Valid() {
		return nil, fmt.Errorf("unknown session mode %q", config.Mode)
	}
	if len(bank.Questions) == 0 {
		return nil, errors.New("bank has no questions")
	}

	questions := shuffleQuestions(bank.Questions)

	if config.MaxQuestions != nil && *config.MaxQuestions > 0 && *config.MaxQuestions < len(questions) {
		questions = questions[:*config.MaxQuestions]
	}

	return &Session{
		ID:               id.GenerateID(),
		BankID:           bank.ID,
		Questions:        questions,
		TimeLimitSeconds: config.TimeLimitSeconds,
		Mode:             config.Mode,
	}, nil
}

// shuffleQuestions returns a new slice with questions in random order.
func shuffleQuestions(questions []questionbank.Question) []questionbank.Question {
	shuffled := make([]questionbank.Question, len(questions))
	copy(shuffled, questions)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
