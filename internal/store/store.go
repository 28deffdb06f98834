package store

import (
	"errors"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/domain/questionbank"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Session status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Store is the persistence boundary: banks with their questions, session
// snapshots, and the per-position outcomes recorded while a session runs.
type Store interface {
	SaveBank(bank *questionbank.Bank) error
	GetBank(id string) (*questionbank.Bank, error)
	ListBanks() ([]*questionbank.Bank, error)
	DeleteBank(id string) error
	AddQuestion(bankID string, question questionbank.Question) error

	SaveSession(session *practicesession.Session) error
	GetSession(id string) (*practicesession.Session, error)
	GetSessionStatus(id string) (string, error)
	CompleteSession(id string) error
	GetSessionQuestion(sessionID string, position int) (questionbank.Question, error)

	SaveOutcome(sessionID string, outcome practicesession.Outcome) error
	ListOutcomes(sessionID string) ([]practicesession.Outcome, error)
}
