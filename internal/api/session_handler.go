// internal/api/session_handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	BankID        string `json:"bank_id" example:"x9y8z7w6v5u4t3s2"`
	Mode          string `json:"mode,omitempty" example:"paced"`
	TimeLimitSecs int    `json:"time_limit_secs,omitempty" example:"60"`
	MaxQuestions  *int   `json:"max_questions,omitempty" example:"10"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.BankID == "" {
		return errors.New("bank_id is required")
	}
	if r.Mode != "" && !practicesession.Mode(r.Mode).Valid() {
		return errors.New("invalid mode: must be continuous or paced")
	}
	if r.TimeLimitSecs < 0 {
		return errors.New("time_limit_secs must be positive")
	}
	return nil
}

// SessionView is the engine state a client renders from. The current
// question carries its prompt only; the correct answer and explanation
// appear in the outcome once the position is resolved.
type SessionView struct {
	SessionID          string                   `json:"session_id" example:"s1e2s3s4i5o6n7i8"`
	Mode               string                   `json:"mode" example:"paced"`
	Phase              string                   `json:"phase" example:"awaiting-answer"`
	Position           int                      `json:"position" example:"0"`
	TotalQuestions     int                      `json:"total_questions" example:"10"`
	Prompt             string                   `json:"prompt" example:"What is a goroutine?"`
	TimerRemaining     int                      `json:"timer_remaining" example:"60"`
	TimerRunning       bool                     `json:"timer_running" example:"true"`
	ExplanationVisible bool                     `json:"explanation_visible" example:"false"`
	AnsweredCount      int                      `json:"answered_count" example:"0"`
	GuardArmed         bool                     `json:"guard_armed" example:"true"`
	Outcome            *practicesession.Outcome `json:"outcome,omitempty"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"A lightweight thread managed by the Go runtime"`
}

type LeaveRequest struct {
	Trigger string `json:"trigger" example:"back"`
}

func (r *LeaveRequest) Validate() error {
	if r.Trigger != "back" && r.Trigger != "unload" {
		return errors.New("trigger must be back or unload")
	}
	return nil
}

type LeaveResponse struct {
	Decision string `json:"decision" example:"blocked"`
	Message  string `json:"message,omitempty"`
}

func (h *Handler) sessionView(engine *practicesession.Engine) SessionView {
	snap := engine.Snapshot()
	view := SessionView{
		SessionID:          snap.SessionID,
		Mode:               string(snap.Mode),
		Phase:              string(snap.Phase),
		Position:           snap.Position,
		TotalQuestions:     snap.TotalQuestions,
		TimerRemaining:     snap.TimerRemaining,
		TimerRunning:       engine.TimerRunning(),
		ExplanationVisible: snap.ExplanationVisible,
		AnsweredCount:      snap.AnsweredCount,
		GuardArmed:         snap.GuardArmed,
		Outcome:            snap.Outcome,
	}
	if questions := engine.Session().Questions; snap.Position < len(questions) {
		view.Prompt = questions[snap.Position].Prompt
	}
	return view
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session.
// @Summary      Start a practice session
// @Description  Build a session from a bank's questions and start its countdown.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session to start"
// @Success      201   {object}  SessionView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "bank not found"
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cfg := practicesession.DefaultConfig()
	if req.Mode != "" {
		cfg.Mode = practicesession.Mode(req.Mode)
	}
	if req.TimeLimitSecs > 0 {
		cfg.TimeLimitSeconds = req.TimeLimitSecs
	}
	if req.MaxQuestions != nil && *req.MaxQuestions > 0 {
		cfg.MaxQuestions = req.MaxQuestions
	}

	engine, err := h.sessions.Launch(req.BankID, cfg)
	if h.handleStoreError(w, err, "bank") {
		return
	}

	respondJSON(w, http.StatusCreated, h.sessionView(engine))
}

// getSession returns the current state of a running session.
// @Summary      Get session state
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// submitAnswer submits the answer for the current question.
// @Summary      Submit an answer
// @Description  Score the answer for the current question. A duplicate submission for an already resolved question is a no-op.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Selected answer"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session already completed"
// @Failure      502        {object}  map[string]string  "scoring failed, retry"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if h.handleEngineError(w, engine.Submit(r.Context(), req.Answer)) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// skipQuestion resolves the current question without an answer.
// @Summary      Skip the current question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/skip [post]
func (h *Handler) skipQuestion(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	if h.handleEngineError(w, engine.Skip(r.Context())) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// nextQuestion advances past an answered question.
// @Summary      Continue to the next question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	if h.handleEngineError(w, engine.Next()) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// previousQuestion steps back to the previous question.
// @Summary      Go back one question
// @Description  An answered question is shown with its stored outcome and frozen timer.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "already at the first question"
// @Router       /sessions/{sessionID}/back [post]
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	if h.handleEngineError(w, engine.Rewind()) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// exitSession finalizes the session at its current progress.
// @Summary      Exit the session early
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/exit [post]
func (h *Handler) exitSession(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	if h.handleEngineError(w, engine.Exit()) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionView(engine))
}

// leaveSession asks the interrupt guard whether navigation away is allowed.
// @Summary      Check a leave attempt
// @Description  Ask the guard about a browser back press or page unload while the session runs.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string        true  "Session ID"
// @Param        body       body      LeaveRequest  true  "Leave trigger"
// @Success      200        {object}  LeaveResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/leave [post]
func (h *Handler) leaveSession(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	var req LeaveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	guard := engine.Guard()
	var resp LeaveResponse
	switch req.Trigger {
	case "back":
		decision, message := guard.HistoryBack()
		resp = LeaveResponse{Decision: string(decision), Message: message}
	case "unload":
		resp = LeaveResponse{Decision: string(guard.PageUnload())}
	}
	respondJSON(w, http.StatusOK, resp)
}

// sessionResults returns the persisted end state of a session.
// @Summary      Get session results
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionResults
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/results [get]
func (h *Handler) sessionResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.sessions.Results(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// sessionEvents streams engine events (ticks, phase changes, completion)
// over SSE so the client's countdown display stays in step with the engine.
func (h *Handler) sessionEvents(w http.ResponseWriter, r *http.Request) {
	engine, err := h.sessions.Engine(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	for {
		select {
		case event, ok := <-engine.Events():
			if !ok {
				return
			}

			data, _ := json.Marshal(event)
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))

			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
