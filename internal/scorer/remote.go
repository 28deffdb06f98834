package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
)

// RemoteScorer scores answers by calling an external scoring service over
// HTTP. A 409 from the service means the session was already finalized on
// its side, which the engine treats as its completion signal.
type RemoteScorer struct {
	url    string       // e.g. "http://localhost:9090"
	client *http.Client // reused across calls
}

// Compile-time check: *RemoteScorer satisfies the Scorer interface.
var _ practicesession.Scorer = (*RemoteScorer)(nil)

// ScoreError is returned when scoring fails so the caller can distinguish
// "service rejected the answer" from "service was unreachable."
type ScoreError struct {
	Reason  string
	Wrapped error
}

func (e *ScoreError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("scoring failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("scoring failed: %s", e.Reason)
}

func (e *ScoreError) Unwrap() error {
	return e.Wrapped
}

func NewRemoteScorer(url string) *RemoteScorer {
	return &RemoteScorer{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

const maxRetries = 2

type scoreRequestBody struct {
	SessionID      string `json:"session_id"`
	QuestionID     string `json:"question_id"`
	Position       int    `json:"position"`
	SelectedAnswer string `json:"selected_answer"`
	TimeTakenSecs  int    `json:"time_taken_secs"`
	IsTimeout      bool   `json:"is_timeout"`
}

type scoreResponseBody struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Score submits the answer and returns the verdict. Transient failures are
// retried; a conflict response is returned as ErrAlreadyCompleted without
// retrying, since the session will never reopen.
func (r *RemoteScorer) Score(ctx context.Context, req practicesession.ScoreRequest) (practicesession.ScoreResult, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err := r.call(ctx, req)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, practicesession.ErrAlreadyCompleted) {
			return practicesession.ScoreResult{}, err
		}
		lastErr = err
	}

	return practicesession.ScoreResult{}, &ScoreError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

func (r *RemoteScorer) call(ctx context.Context, req practicesession.ScoreRequest) (practicesession.ScoreResult, error) {
	body := scoreRequestBody{
		SessionID:      req.SessionID,
		QuestionID:     req.QuestionID,
		Position:       req.Position,
		SelectedAnswer: req.SelectedAnswer,
		TimeTakenSecs:  req.TimeTakenSeconds,
		IsTimeout:      req.IsTimeout,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url+"/v1/score", bytes.NewBuffer(jsonData))
	if err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return practicesession.ScoreResult{}, practicesession.ErrAlreadyCompleted
	default:
		return practicesession.ScoreResult{}, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var scored scoreResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&scored); err != nil {
		return practicesession.ScoreResult{}, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	return practicesession.ScoreResult{
		IsCorrect:     scored.IsCorrect,
		CorrectAnswer: scored.CorrectAnswer,
		Explanation:   scored.Explanation,
	}, nil
}
