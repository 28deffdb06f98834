package scorer

import (
	"context"
	"fmt"
	"strings"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/store"
)

// LocalScorer scores answers against the persisted session snapshot.
// Comparison is case-insensitive on trimmed text; a timeout or skip carries
// an empty answer and is never correct.
type LocalScorer struct {
	store store.Store
}

var _ practicesession.Scorer = (*LocalScorer)(nil)

func NewLocalScorer(s store.Store) *LocalScorer {
	return &LocalScorer{store: s}
}

func (l *LocalScorer) Score(_ context.Context, req practicesession.ScoreRequest) (practicesession.ScoreResult, error) {
	status, err := l.store.GetSessionStatus(req.SessionID)
	if err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("looking up session %s: %w", req.SessionID, err)
	}
	if status == store.StatusCompleted {
		return practicesession.ScoreResult{}, practicesession.ErrAlreadyCompleted
	}

	q, err := l.store.GetSessionQuestion(req.SessionID, req.Position)
	if err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("looking up question at position %d: %w", req.Position, err)
	}

	return practicesession.ScoreResult{
		IsCorrect:     answersMatch(req.SelectedAnswer, q.CorrectAnswer),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, nil
}

func answersMatch(selected, correct string) bool {
	if strings.TrimSpace(selected) == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(correct))
}
