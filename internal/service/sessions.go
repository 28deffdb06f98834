package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/store"
	"github.com/quizpace/backend/internal/worker"
)

var (
	// ErrNoActiveSession is returned when a session has no live engine,
	// either because it finished or because it never started in this
	// process.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidSession wraps session construction failures: bad config or
	// a bank without questions.
	ErrInvalidSession = errors.New("invalid session")
)

// SessionService owns the live engines, one per running practice session.
// It is the engine's results Router: completion hands the session to a
// finalization worker that persists the outcomes and marks the session
// completed, so a slow disk write never blocks the user's last click.
type SessionService struct {
	store  store.Store
	scorer practicesession.Scorer
	logger *slog.Logger
	opts   []practicesession.Option

	mu      sync.RWMutex
	engines map[string]*practicesession.Engine

	finalize *worker.Pool[error]
}

var _ practicesession.Router = (*SessionService)(nil)

// NewSessionService creates the service and starts its finalization workers.
func NewSessionService(s store.Store, sc practicesession.Scorer, logger *slog.Logger, opts ...practicesession.Option) *SessionService {
	svc := &SessionService{
		store:    s,
		scorer:   sc,
		logger:   logger,
		opts:     opts,
		engines:  make(map[string]*practicesession.Engine),
		finalize: worker.NewPool[error](2, 16),
	}
	go svc.drainFinalizations()
	return svc
}

// Launch builds a session from a bank, persists its snapshot, and starts an
// engine for it.
func (s *SessionService) Launch(bankID string, cfg practicesession.SessionConfig) (*practicesession.Engine, error) {
	bank, err := s.store.GetBank(bankID)
	if err != nil {
		return nil, err
	}

	session, err := practicesession.NewWithConfig(bank, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if err := s.store.SaveSession(session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	engine := practicesession.NewEngine(session, s.scorer, s, s.logger, s.opts...)
	if err := engine.Start(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.engines[session.ID] = engine
	s.mu.Unlock()

	s.logger.Info("session started",
		"session_id", session.ID,
		"bank_id", bankID,
		"mode", session.Mode,
		"questions", len(session.Questions),
	)
	return engine, nil
}

// Engine returns the live engine for a session.
func (s *SessionService) Engine(sessionID string) (*practicesession.Engine, error) {
	s.mu.RLock()
	engine, ok := s.engines[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoActiveSession
	}
	return engine, nil
}

// ToResults implements the engine's Router. The engine guarantees exactly
// one call per session; everything that must survive the process goes
// through the finalization job.
func (s *SessionService) ToResults(sessionID string) {
	s.mu.RLock()
	engine, ok := s.engines[sessionID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	outcomes := engine.Outcomes()

	s.finalize.Submit(sessionID, func() error {
		defer s.remove(sessionID)

		for _, out := range outcomes {
			err := s.store.SaveOutcome(sessionID, out)
			if err != nil && !errors.Is(err, store.ErrDuplicate) {
				return fmt.Errorf("saving outcome at position %d: %w", out.Position, err)
			}
		}
		if err := s.store.CompleteSession(sessionID); err != nil {
			return fmt.Errorf("marking session completed: %w", err)
		}
		return nil
	})
}

func (s *SessionService) remove(sessionID string) {
	s.mu.Lock()
	engine, ok := s.engines[sessionID]
	delete(s.engines, sessionID)
	s.mu.Unlock()
	if ok {
		engine.Close()
	}
}

func (s *SessionService) drainFinalizations() {
	for res := range s.finalize.Results() {
		if res.Output != nil {
			s.logger.Error("session finalization failed",
				"session_id", res.JobID,
				"error", res.Output,
			)
			continue
		}
		s.logger.Info("session finalized", "session_id", res.JobID)
	}
}

// Shutdown closes every live engine. In-memory progress of unfinished
// sessions is dropped; only completed sessions are persisted.
func (s *SessionService) Shutdown() {
	s.mu.Lock()
	engines := s.engines
	s.engines = make(map[string]*practicesession.Engine)
	s.mu.Unlock()

	for id, engine := range engines {
		engine.Close()
		s.logger.Info("session closed on shutdown", "session_id", id)
	}
	s.finalize.Close()
}

// ── Results ─────────────────────────────────────────────────────────────────

// SessionResults is the persisted end state of a session.
type SessionResults struct {
	SessionID      string                    `json:"session_id"`
	Status         string                    `json:"status"`
	TotalQuestions int                       `json:"total_questions"`
	AnsweredCount  int                       `json:"answered_count"`
	CorrectCount   int                       `json:"correct_count"`
	TimeoutCount   int                       `json:"timeout_count"`
	Outcomes       []practicesession.Outcome `json:"outcomes"`
}

// Results loads a session's final state from persistence, so it works for
// sessions finished in an earlier run too. While the finalization job is
// still in flight the live engine's outcomes stand in for the rows that
// have not landed yet.
func (s *SessionService) Results(sessionID string) (*SessionResults, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	outcomes, err := s.store.ListOutcomes(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	engine, live := s.engines[sessionID]
	s.mu.RUnlock()
	if live {
		if eo := engine.Outcomes(); len(eo) > len(outcomes) {
			outcomes = eo
		}
	}

	// Read the status after the live check: a finalized session has already
	// landed in the store, a live one reports its own phase.
	status, err := s.store.GetSessionStatus(sessionID)
	if err != nil {
		return nil, err
	}
	if live && engine.Completed() {
		status = store.StatusCompleted
	}

	results := &SessionResults{
		SessionID:      sessionID,
		Status:         status,
		TotalQuestions: len(session.Questions),
		AnsweredCount:  len(outcomes),
		Outcomes:       outcomes,
	}
	for _, out := range outcomes {
		if out.IsCorrect {
			results.CorrectCount++
		}
		if out.IsTimeout {
			results.TimeoutCount++
		}
	}
	return results, nil
}
