package practicesession

import (
	"context"
	"errors"
)

// ErrAlreadyCompleted is returned by a Scorer when the session itself has
// already been finalized, for example a resubmission after a finished run.
// It is not surfaced to the user; the engine jumps straight to its terminal
// state and routes to results.
var ErrAlreadyCompleted = errors.New("session already completed by collaborator")

// ScoreRequest describes one submitted answer.
type ScoreRequest struct {
	SessionID        string
	QuestionID       string
	Position         int
	SelectedAnswer   string
	TimeTakenSeconds int
	IsTimeout        bool
}

// ScoreResult is the collaborator's verdict on a submitted answer.
type ScoreResult struct {
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
}

// Scorer is the scoring/persistence collaborator. It records the answer and
// returns correctness plus explanatory content. Calling it is the engine's
// only suspension point; everything else is synchronous.
type Scorer interface {
	Score(ctx context.Context, req ScoreRequest) (ScoreResult, error)
}

// Router is the results-routing collaborator. The engine's sole externally
// visible side effect on completion or explicit exit is a single ToResults
// call; the destination re-fetches final state from persistence.
type Router interface {
	ToResults(sessionID string)
}
