package practicesession

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionUnavailable means the question list could not be loaded or
	// was empty. The caller must redirect to session setup; the engine
	// never enters a partial session.
	ErrSessionUnavailable = errors.New("session unavailable")

	// ErrSessionCompleted is returned by operations invoked after the
	// session reached its terminal state.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrAtFirstQuestion is returned by Rewind at position zero.
	ErrAtFirstQuestion = errors.New("already at the first question")
)

// SubmissionError wraps a transient scorer failure. The question remains
// unanswered and the submission can be retried; the engine has already
// restored its pre-submission state.
type SubmissionError struct {
	QuestionID string
	Err        error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submitting answer for question %s: %v", e.QuestionID, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
