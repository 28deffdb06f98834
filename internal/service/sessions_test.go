package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/domain/questionbank"
	"github.com/quizpace/backend/internal/scorer"
	"github.com/quizpace/backend/internal/service"
	"github.com/quizpace/backend/internal/store"
)

func newTestService(t *testing.T) (*service.SessionService, *store.SQLiteStore, string) {
	t.Helper()

	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	bank := questionbank.New("Go")
	for i := 0; i < 3; i++ {
		if err := bank.AddQuestion("What keyword starts a goroutine?", "go", "The go statement starts a new goroutine."); err != nil {
			t.Fatalf("adding question: %v", err)
		}
	}
	if err := s.SaveBank(bank); err != nil {
		t.Fatalf("saving bank: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewSessionService(s, scorer.NewLocalScorer(s), logger,
		practicesession.WithAutoAdvanceDelay(0),
	)
	t.Cleanup(svc.Shutdown)
	return svc, s, bank.ID
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSessionService_LaunchRegistersEngine(t *testing.T) {
	svc, _, bankID := newTestService(t)

	engine, err := svc.Launch(bankID, practicesession.DefaultConfig())
	if err != nil {
		t.Fatalf("launch: %v", err)
	}

	got, err := svc.Engine(engine.Session().ID)
	if err != nil {
		t.Fatalf("engine lookup: %v", err)
	}
	if got != engine {
		t.Error("lookup should return the launched engine")
	}
	if snap := got.Snapshot(); snap.Phase != practicesession.PhaseAwaitingAnswer {
		t.Errorf("launched engine should be awaiting an answer, phase = %q", snap.Phase)
	}
}

func TestSessionService_LaunchUnknownBank(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Launch("missing", practicesession.DefaultConfig()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionService_CompletionFinalizes(t *testing.T) {
	svc, s, bankID := newTestService(t)

	cfg := practicesession.DefaultConfig()
	cfg.Mode = practicesession.ModeContinuous
	engine, err := svc.Launch(bankID, cfg)
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	sessionID := engine.Session().ID

	for i := 0; i < 3; i++ {
		if err := engine.Submit(context.Background(), "go"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if !engine.Completed() {
		t.Fatal("expected the session to complete after the last answer")
	}

	// Finalization runs on the worker pool; wait for it to land.
	waitFor(t, func() bool {
		status, err := s.GetSessionStatus(sessionID)
		return err == nil && status == store.StatusCompleted
	})

	outcomes, err := s.ListOutcomes(sessionID)
	if err != nil {
		t.Fatalf("listing outcomes: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 persisted outcomes, got %d", len(outcomes))
	}

	// The live engine is gone once the session is finalized.
	waitFor(t, func() bool {
		_, err := svc.Engine(sessionID)
		return errors.Is(err, service.ErrNoActiveSession)
	})
}

func TestSessionService_Results(t *testing.T) {
	svc, _, bankID := newTestService(t)

	cfg := practicesession.DefaultConfig()
	engine, err := svc.Launch(bankID, cfg)
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	sessionID := engine.Session().ID

	if err := engine.Submit(context.Background(), "go"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := engine.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := engine.Submit(context.Background(), "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := engine.Exit(); err != nil {
		t.Fatalf("exit: %v", err)
	}

	results, err := svc.Results(sessionID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if results.Status != store.StatusCompleted {
		t.Errorf("expected completed status, got %q", results.Status)
	}
	if results.TotalQuestions != 3 || results.AnsweredCount != 2 {
		t.Errorf("expected 2 of 3 answered, got %d of %d", results.AnsweredCount, results.TotalQuestions)
	}
	if results.CorrectCount != 1 {
		t.Errorf("expected 1 correct, got %d", results.CorrectCount)
	}
}
