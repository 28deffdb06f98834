// internal/store/sqlite.go
package store

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS banks (
    id TEXT PRIMARY KEY,
    subject TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    bank_id TEXT NOT NULL,
    prompt TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    explanation TEXT NOT NULL,
    FOREIGN KEY (bank_id) REFERENCES banks(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    bank_id TEXT NOT NULL,
    time_limit_secs INTEGER NOT NULL,
    mode TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'in_progress',
    FOREIGN KEY (bank_id) REFERENCES banks(id)
);

CREATE TABLE IF NOT EXISTS session_questions (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    question_id TEXT NOT NULL,
    prompt TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    explanation TEXT NOT NULL,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);

CREATE TABLE IF NOT EXISTS outcomes (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    question_id TEXT NOT NULL,
    selected_answer TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    correct_answer TEXT NOT NULL,
    explanation TEXT NOT NULL,
    is_timeout INTEGER NOT NULL,
    time_taken_secs INTEGER NOT NULL,
    time_remaining_secs INTEGER NOT NULL,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Banks
// ============================================================================

func (s *SQLiteStore) SaveBank(bank *questionbank.Bank) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO banks (id, subject) VALUES (?, ?)", bank.ID, bank.Subject)
	if err != nil {
		return err
	}

	for _, q := range bank.Questions {
		_, err = tx.Exec(
			"INSERT INTO questions (id, bank_id, prompt, correct_answer, explanation) VALUES (?, ?, ?, ?, ?)",
			q.ID, bank.ID, q.Prompt, q.CorrectAnswer, q.Explanation,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetBank(id string) (*questionbank.Bank, error) {
	var bank questionbank.Bank
	err := s.db.QueryRow("SELECT id, subject FROM banks WHERE id = ?", id).Scan(&bank.ID, &bank.Subject)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, prompt, correct_answer, explanation FROM questions WHERE bank_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q questionbank.Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.CorrectAnswer, &q.Explanation); err != nil {
			return nil, err
		}
		bank.Questions = append(bank.Questions, q)
	}

	return &bank, nil
}

func (s *SQLiteStore) ListBanks() ([]*questionbank.Bank, error) {
	rows, err := s.db.Query("SELECT id, subject FROM banks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []*questionbank.Bank
	for rows.Next() {
		var bank questionbank.Bank
		if err := rows.Scan(&bank.ID, &bank.Subject); err != nil {
			return nil, err
		}
		banks = append(banks, &bank)
	}
	return banks, nil
}

func (s *SQLiteStore) DeleteBank(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM questions WHERE bank_id = ?", id)
	if err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM banks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddQuestion(bankID string, question questionbank.Question) error {
	_, err := s.db.Exec(
		"INSERT INTO questions (id, bank_id, prompt, correct_answer, explanation) VALUES (?, ?, ?, ?, ?)",
		question.ID, bankID, question.Prompt, question.CorrectAnswer, question.Explanation,
	)
	return err
}

// ============================================================================
// Sessions
// ============================================================================

// SaveSession persists the session together with its shuffled question order,
// so a later read reproduces the snapshot the user actually saw.
func (s *SQLiteStore) SaveSession(session *practicesession.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO sessions (id, bank_id, time_limit_secs, mode, status) VALUES (?, ?, ?, ?, ?)",
		session.ID, session.BankID, session.TimeLimitSeconds, string(session.Mode), StatusInProgress,
	)
	if err != nil {
		return err
	}

	for i, q := range session.Questions {
		_, err = tx.Exec(
			"INSERT INTO session_questions (session_id, position, question_id, prompt, correct_answer, explanation) VALUES (?, ?, ?, ?, ?, ?)",
			session.ID, i, q.ID, q.Prompt, q.CorrectAnswer, q.Explanation,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSession(id string) (*practicesession.Session, error) {
	var session practicesession.Session
	var mode string

	err := s.db.QueryRow(
		"SELECT id, bank_id, time_limit_secs, mode FROM sessions WHERE id = ?", id,
	).Scan(&session.ID, &session.BankID, &session.TimeLimitSeconds, &mode)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	session.Mode = practicesession.Mode(mode)

	rows, err := s.db.Query(
		"SELECT question_id, prompt, correct_answer, explanation FROM session_questions WHERE session_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q questionbank.Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.CorrectAnswer, &q.Explanation); err != nil {
			return nil, err
		}
		session.Questions = append(session.Questions, q)
	}

	return &session, nil
}

func (s *SQLiteStore) GetSessionStatus(id string) (string, error) {
	var status string
	err := s.db.QueryRow("SELECT status FROM sessions WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

func (s *SQLiteStore) CompleteSession(id string) error {
	result, err := s.db.Exec("UPDATE sessions SET status = ? WHERE id = ?", StatusCompleted, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) GetSessionQuestion(sessionID string, position int) (questionbank.Question, error) {
	var q questionbank.Question
	err := s.db.QueryRow(
		"SELECT question_id, prompt, correct_answer, explanation FROM session_questions WHERE session_id = ? AND position = ?",
		sessionID, position,
	).Scan(&q.ID, &q.Prompt, &q.CorrectAnswer, &q.Explanation)
	if err == sql.ErrNoRows {
		return questionbank.Question{}, ErrNotFound
	}
	if err != nil {
		return questionbank.Question{}, err
	}
	return q, nil
}

// ============================================================================
// Outcomes
// ============================================================================

// SaveOutcome inserts the outcome for a position. The (session_id, position)
// primary key is the durable backstop for at-most-once recording: a second
// insert for the same position reports ErrDuplicate instead of overwriting.
func (s *SQLiteStore) SaveOutcome(sessionID string, outcome practicesession.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO outcomes (session_id, position, question_id, selected_answer, is_correct, correct_answer, explanation, is_timeout, time_taken_secs, time_remaining_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, outcome.Position, outcome.QuestionID, outcome.SelectedAnswer,
		boolToInt(outcome.IsCorrect), outcome.CorrectAnswer, outcome.Explanation,
		boolToInt(outcome.IsTimeout), outcome.TimeTakenSeconds, outcome.TimeRemainingSeconds,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) ListOutcomes(sessionID string) ([]practicesession.Outcome, error) {
	rows, err := s.db.Query(
		`SELECT position, question_id, selected_answer, is_correct, correct_answer, explanation, is_timeout, time_taken_secs, time_remaining_secs
		 FROM outcomes WHERE session_id = ? ORDER BY position`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []practicesession.Outcome
	for rows.Next() {
		var o practicesession.Outcome
		var isCorrect, isTimeout int
		if err := rows.Scan(
			&o.Position, &o.QuestionID, &o.SelectedAnswer, &isCorrect,
			&o.CorrectAnswer, &o.Explanation, &isTimeout,
			&o.TimeTakenSeconds, &o.TimeRemainingSeconds,
		); err != nil {
			return nil, err
		}
		o.IsCorrect = isCorrect != 0
		o.IsTimeout = isTimeout != 0
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
