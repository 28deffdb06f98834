package scorer_test

import (
	"context"
	"errors"
	"testing"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/domain/questionbank"
	"github.com/quizpace/backend/internal/scorer"
	"github.com/quizpace/backend/internal/store"
)

func seedSession(t *testing.T) (*store.SQLiteStore, *practicesession.Session) {
	t.Helper()

	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	bank := questionbank.New("Networking")
	if err := bank.AddQuestion("What does TCP stand for?", "Transmission Control Protocol", "It is the connection-oriented transport protocol."); err != nil {
		t.Fatalf("adding question: %v", err)
	}
	if err := s.SaveBank(bank); err != nil {
		t.Fatalf("saving bank: %v", err)
	}

	session := practicesession.New(bank)
	if err := s.SaveSession(session); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	return s, session
}

func TestLocalScorer_CorrectAnswer(t *testing.T) {
	s, session := seedSession(t)
	sc := scorer.NewLocalScorer(s)

	res, err := sc.Score(context.Background(), practicesession.ScoreRequest{
		SessionID:      session.ID,
		QuestionID:     session.Questions[0].ID,
		Position:       0,
		SelectedAnswer: "  transmission control protocol ",
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !res.IsCorrect {
		t.Error("trimmed case-insensitive match should be correct")
	}
	if res.CorrectAnswer != "Transmission Control Protocol" {
		t.Errorf("unexpected correct answer %q", res.CorrectAnswer)
	}
	if res.Explanation == "" {
		t.Error("explanation should come back with the verdict")
	}
}

func TestLocalScorer_WrongAndEmptyAnswers(t *testing.T) {
	s, session := seedSession(t)
	sc := scorer.NewLocalScorer(s)

	res, err := sc.Score(context.Background(), practicesession.ScoreRequest{
		SessionID:      session.ID,
		QuestionID:     session.Questions[0].ID,
		Position:       0,
		SelectedAnswer: "Transport Connection Protocol",
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.IsCorrect {
		t.Error("wrong answer must not be correct")
	}

	// A timeout submits an empty answer; it is never correct, even for a
	// question whose stored answer happens to be blank-insensitive.
	res, err = sc.Score(context.Background(), practicesession.ScoreRequest{
		SessionID:  session.ID,
		QuestionID: session.Questions[0].ID,
		Position:   0,
		IsTimeout:  true,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.IsCorrect {
		t.Error("empty answer must not be correct")
	}
}

func TestLocalScorer_CompletedSession(t *testing.T) {
	s, session := seedSession(t)
	if err := s.CompleteSession(session.ID); err != nil {
		t.Fatalf("completing session: %v", err)
	}

	sc := scorer.NewLocalScorer(s)
	_, err := sc.Score(context.Background(), practicesession.ScoreRequest{
		SessionID:      session.ID,
		QuestionID:     session.Questions[0].ID,
		Position:       0,
		SelectedAnswer: "anything",
	})
	if !errors.Is(err, practicesession.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestLocalScorer_UnknownSession(t *testing.T) {
	s, _ := seedSession(t)
	sc := scorer.NewLocalScorer(s)

	_, err := sc.Score(context.Background(), practicesession.ScoreRequest{
		SessionID:      "no-such-session",
		SelectedAnswer: "anything",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
