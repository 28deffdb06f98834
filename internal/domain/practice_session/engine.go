package practicesession

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Phase is the per-question lifecycle phase of a session.
type Phase string

const (
	PhaseLoading            Phase = "loading"
	PhaseAwaitingAnswer     Phase = "awaiting-answer"
	PhaseSubmitting         Phase = "submitting"
	PhaseShowingExplanation Phase = "showing-explanation"
	PhaseCompleted          Phase = "completed"
)

// EventType identifies an engine event.
type EventType string

const (
	EventTick      EventType = "tick"
	EventPhase     EventType = "phase"
	EventCompleted EventType = "completed"
)

// Event is emitted on the engine's event channel. Sends never block; a slow
// consumer drops events rather than stalling a tick.
type Event struct {
	Type      EventType `json:"type"`
	Position  int       `json:"position"`
	Remaining int       `json:"remaining"`
	Phase     Phase     `json:"phase"`
}

// Snapshot is a point-in-time view of the engine for display.
type Snapshot struct {
	SessionID          string   `json:"session_id"`
	Mode               Mode     `json:"mode"`
	Phase              Phase    `json:"phase"`
	Position           int      `json:"position"`
	TotalQuestions     int      `json:"total_questions"`
	TimerRemaining     int      `json:"timer_remaining"`
	ExplanationVisible bool     `json:"explanation_visible"`
	AnsweredCount      int      `json:"answered_count"`
	GuardArmed         bool     `json:"guard_armed"`
	Outcome            *Outcome `json:"outcome,omitempty"`
}

const defaultAutoAdvanceDelay = time.Second

// Option configures an Engine.
type Option func(*Engine)

// WithAutoAdvanceDelay sets the brief pause before a continuous session
// advances past a freshly answered question. Zero advances synchronously.
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(e *Engine) { e.autoAdvanceDelay = d }
}

// WithTickerFactory overrides the countdown's tick source.
func WithTickerFactory(f TickerFactory) Option {
	return func(e *Engine) { e.newTicker = f }
}

// Engine drives one user through a session's ordered questions under a
// per-question countdown. All state transitions are serialized on a single
// mutex: a timer expiry and a user click may be scheduled back to back, but
// only the first to claim the in-flight flag submits; the rest are no-ops.
type Engine struct {
	session *Session
	scorer  Scorer
	router  Router
	logger  *slog.Logger

	autoAdvanceDelay time.Duration
	newTicker        TickerFactory

	mu                 sync.Mutex
	phase              Phase
	position           int
	explanationVisible bool
	inFlight           bool
	navigating         bool
	routed             bool
	closed             bool

	// timerGen identifies the current countdown; callbacks from a replaced
	// countdown carry a stale generation and are ignored. advanceGen does
	// the same for pending auto-advances.
	timerGen   int
	advanceGen int
	countdown  *Countdown

	outcomes *outcomeStore
	guard    *Guard

	events chan Event
}

// NewEngine wires a loaded session to its collaborators. The engine starts
// in the loading phase; call Start to begin the first question.
func NewEngine(session *Session, scorer Scorer, router Router, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		session:          session,
		scorer:           scorer,
		router:           router,
		logger:           logger,
		autoAdvanceDelay: defaultAutoAdvanceDelay,
		phase:            PhaseLoading,
		outcomes:         newOutcomeStore(),
		guard:            NewGuard(),
		events:           make(chan Event, 64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start transitions the engine from loading to the first question: the guard
// is armed and a full countdown begins. A session without questions never
// becomes active; the caller must redirect to setup.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseCompleted:
		return ErrSessionCompleted
	case PhaseLoading:
	default:
		return nil // already active
	}
	if e.session == nil || len(e.session.Questions) == 0 {
		return ErrSessionUnavailable
	}

	e.position = 0
	e.phase = PhaseAwaitingAnswer
	e.guard.Arm()
	e.armCountdownLocked(e.session.TimeLimitSeconds)
	e.emitLocked(Event{Type: EventPhase, Position: 0, Remaining: e.session.TimeLimitSeconds, Phase: e.phase})
	return nil
}

// Submit records the user's answer for the current question. Duplicate
// triggers for an already answered or in-flight position are silently
// suppressed. On scorer failure the pre-submission state is restored, the
// countdown resumes from the seconds that were left, and a SubmissionError
// is returned so the caller can retry.
func (e *Engine) Submit(ctx context.Context, answer string) error {
	e.mu.Lock()
	switch e.phase {
	case PhaseLoading:
		e.mu.Unlock()
		return ErrSessionUnavailable
	case PhaseCompleted:
		e.mu.Unlock()
		return ErrSessionCompleted
	}
	pos := e.position
	if _, answered := e.outcomes.Get(pos); answered || e.inFlight {
		e.mu.Unlock()
		return nil
	}
	timeTaken := e.session.TimeLimitSeconds - e.countdown.Remaining()
	e.beginSubmissionLocked()
	e.mu.Unlock()

	return e.finishSubmission(ctx, pos, answer, timeTaken, false)
}

// Skip resolves the current question without an answer. It is an ordinary
// submission with an empty answer and zero time taken, and follows the same
// post-answer transition as any other.
func (e *Engine) Skip(ctx context.Context) error {
	e.mu.Lock()
	switch e.phase {
	case PhaseLoading:
		e.mu.Unlock()
		return ErrSessionUnavailable
	case PhaseCompleted:
		e.mu.Unlock()
		return ErrSessionCompleted
	}
	pos := e.position
	if _, answered := e.outcomes.Get(pos); answered || e.inFlight {
		e.mu.Unlock()
		return nil
	}
	e.beginSubmissionLocked()
	e.mu.Unlock()

	return e.finishSubmission(ctx, pos, "", 0, false)
}

// Next advances past an answered question: in paced mode this is the
// explicit Continue after the explanation, after a rewind it moves forward
// again in either mode. While the current question is still open it does
// nothing.
func (e *Engine) Next() error {
	e.mu.Lock()
	switch e.phase {
	case PhaseLoading:
		e.mu.Unlock()
		return ErrSessionUnavailable
	case PhaseCompleted:
		e.mu.Unlock()
		return ErrSessionCompleted
	}
	if _, answered := e.outcomes.Get(e.position); !answered {
		e.mu.Unlock()
		return nil
	}

	last := e.position == len(e.session.Questions)-1
	var route bool
	switch Decide(e.session.Mode, TriggerContinue, last) {
	case EffectAdvance:
		route = e.advanceLocked()
	case EffectComplete:
		route = e.completeLocked()
	}
	e.mu.Unlock()

	if route {
		e.router.ToResults(e.session.ID)
	}
	return nil
}

// Rewind steps back one question. An answered position is restored from the
// stored outcome: the timer shows the seconds that were left at submission
// and does not run, and in paced mode the explanation is shown again. An
// unanswered position starts a fresh countdown at the full limit.
func (e *Engine) Rewind() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseLoading:
		return ErrSessionUnavailable
	case PhaseCompleted:
		return ErrSessionCompleted
	case PhaseSubmitting:
		// An answer is in flight; navigation waits for it to resolve.
		return nil
	}
	if e.position == 0 {
		return ErrAtFirstQuestion
	}

	// The navigating flag keeps countdown callbacks from racing the
	// restore below; the explicit logic here owns the transition.
	e.navigating = true
	defer func() { e.navigating = false }()

	e.advanceGen++
	e.countdown.Stop()
	e.position--

	if out, ok := e.outcomes.Get(e.position); ok {
		switch Decide(e.session.Mode, TriggerRewind, false) {
		case EffectShowStored:
			e.restoreAnsweredLocked(out)
		}
	} else {
		e.explanationVisible = false
		e.phase = PhaseAwaitingAnswer
		e.armCountdownLocked(e.session.TimeLimitSeconds)
	}

	e.emitLocked(Event{Type: EventPhase, Position: e.position, Remaining: e.countdown.Remaining(), Phase: e.phase})
	return nil
}

// Exit finalizes the session at its current progress. It bypasses the guard
// deliberately: this is a clean stop, not a crash, and routes to results
// exactly once.
func (e *Engine) Exit() error {
	e.mu.Lock()
	if e.phase == PhaseCompleted {
		e.mu.Unlock()
		return ErrSessionCompleted
	}
	route := e.completeLocked()
	e.mu.Unlock()

	if route {
		e.router.ToResults(e.session.ID)
	}
	return nil
}

// Close tears the engine down. Any tick or pending advance that fires
// afterwards is a no-op.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.timerGen++
	e.advanceGen++
	if e.countdown != nil {
		e.countdown.Stop()
	}
	e.guard.Disarm()
	close(e.events)
	e.mu.Unlock()
}

// ── Submission internals ────────────────────────────────────────────────────

// beginSubmissionLocked claims the in-flight flag. It is set synchronously
// with respect to the caller, before any asynchronous work begins, which is
// what makes the first trigger win and every later one a no-op.
func (e *Engine) beginSubmissionLocked() {
	e.inFlight = true
	e.phase = PhaseSubmitting
	e.countdown.Stop()
}

func (e *Engine) finishSubmission(ctx context.Context, pos int, answer string, timeTaken int, isTimeout bool) error {
	q := e.session.Questions[pos]
	res, err := e.scorer.Score(ctx, ScoreRequest{
		SessionID:        e.session.ID,
		QuestionID:       q.ID,
		Position:         pos,
		SelectedAnswer:   answer,
		TimeTakenSeconds: timeTaken,
		IsTimeout:        isTimeout,
	})

	e.mu.Lock()
	e.inFlight = false

	// The session may have ended while the answer was in flight (Exit, or a
	// racing completion). The terminal state stands; the result is discarded.
	if e.closed || e.phase == PhaseCompleted {
		e.mu.Unlock()
		return nil
	}

	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			route := e.completeLocked()
			e.mu.Unlock()
			if route {
				e.router.ToResults(e.session.ID)
			}
			return nil
		}
		if e.phase == PhaseSubmitting {
			e.phase = PhaseAwaitingAnswer
		}
		remaining := e.session.TimeLimitSeconds - timeTaken
		if remaining > 0 && e.phase == PhaseAwaitingAnswer && e.position == pos && !e.closed {
			e.armCountdownLocked(remaining)
		}
		e.mu.Unlock()
		return &SubmissionError{QuestionID: q.ID, Err: err}
	}

	outcome := Outcome{
		Position:             pos,
		QuestionID:           q.ID,
		SelectedAnswer:       answer,
		IsCorrect:            res.IsCorrect,
		CorrectAnswer:        res.CorrectAnswer,
		Explanation:          res.Explanation,
		IsTimeout:            isTimeout,
		TimeTakenSeconds:     timeTaken,
		TimeRemainingSeconds: e.session.TimeLimitSeconds - timeTaken,
	}
	if !e.outcomes.Record(outcome) {
		e.mu.Unlock()
		return nil
	}
	// Align the frozen display with the recorded accounting.
	e.countdown.SetRemaining(outcome.TimeRemainingSeconds)

	last := pos == len(e.session.Questions)-1
	switch Decide(e.session.Mode, TriggerSubmitted, last) {
	case EffectShowExplanation:
		e.phase = PhaseShowingExplanation
		e.explanationVisible = true
		e.emitLocked(Event{Type: EventPhase, Position: pos, Remaining: outcome.TimeRemainingSeconds, Phase: e.phase})
		e.mu.Unlock()
	case EffectAdvanceAfterDelay:
		e.advanceGen++
		gen := e.advanceGen
		delay := e.autoAdvanceDelay
		e.mu.Unlock()
		if delay <= 0 {
			e.autoAdvance(gen)
		} else {
			time.AfterFunc(delay, func() { e.autoAdvance(gen) })
		}
	case EffectComplete:
		route := e.completeLocked()
		e.mu.Unlock()
		if route {
			e.router.ToResults(e.session.ID)
		}
	default:
		e.mu.Unlock()
	}
	return nil
}

func (e *Engine) autoAdvance(gen int) {
	e.mu.Lock()
	if e.closed || gen != e.advanceGen || e.phase == PhaseCompleted {
		e.mu.Unlock()
		return
	}
	route := e.advanceLocked()
	e.mu.Unlock()

	if route {
		e.router.ToResults(e.session.ID)
	}
}

// ── Navigation internals ────────────────────────────────────────────────────

// advanceLocked moves to the next question, or completes the session when
// the current one was the last. Reports whether the caller must route to
// results.
func (e *Engine) advanceLocked() bool {
	e.advanceGen++
	if e.position+1 >= len(e.session.Questions) {
		return e.completeLocked()
	}
	e.position++
	if out, ok := e.outcomes.Get(e.position); ok {
		// Moving forward onto a question answered before a rewind: the
		// countdown never runs on an answered position.
		e.restoreAnsweredLocked(out)
		e.emitLocked(Event{Type: EventPhase, Position: e.position, Remaining: out.TimeRemainingSeconds, Phase: e.phase})
		return false
	}
	e.explanationVisible = false
	e.phase = PhaseAwaitingAnswer
	e.armCountdownLocked(e.session.TimeLimitSeconds)
	e.emitLocked(Event{Type: EventPhase, Position: e.position, Remaining: e.session.TimeLimitSeconds, Phase: e.phase})
	return false
}

// restoreAnsweredLocked shows a position that already has an outcome: the
// frozen timer displays the seconds that were left at submission, and in
// paced mode the explanation is shown again.
func (e *Engine) restoreAnsweredLocked(out Outcome) {
	e.countdown.SetRemaining(out.TimeRemainingSeconds)
	e.explanationVisible = e.session.Mode == ModePaced
	if e.explanationVisible {
		e.phase = PhaseShowingExplanation
	} else {
		e.phase = PhaseAwaitingAnswer
	}
}

// completeLocked enters the terminal state: countdown stopped, guard
// released, no further transitions. Reports true exactly once so the results
// routing happens once per session.
func (e *Engine) completeLocked() bool {
	if e.phase == PhaseCompleted {
		return false
	}
	e.phase = PhaseCompleted
	e.explanationVisible = false
	e.advanceGen++
	e.timerGen++
	if e.countdown != nil {
		e.countdown.Stop()
	}
	e.guard.Disarm()
	e.emitLocked(Event{Type: EventCompleted, Position: e.position, Phase: PhaseCompleted})
	if e.routed {
		return false
	}
	e.routed = true
	return true
}

// ── Countdown callbacks ─────────────────────────────────────────────────────

// armCountdownLocked replaces the live countdown. The generation captured by
// the callbacks identifies this countdown; everything else they act on is
// read from the engine at call time, under the lock, so a callback from a
// replaced countdown can never act on the wrong question.
func (e *Engine) armCountdownLocked(seconds int) {
	if e.countdown != nil {
		e.countdown.Stop()
	}
	e.timerGen++
	gen := e.timerGen
	cd := NewCountdown(e.newTicker,
		func(remaining int) { e.handleTick(gen, remaining) },
		func(int) { e.handleExpiry(gen) },
	)
	e.countdown = cd
	cd.Start(seconds)
}

func (e *Engine) handleTick(gen, remaining int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.timerGen || e.navigating {
		return
	}
	e.emitLocked(Event{Type: EventTick, Position: e.position, Remaining: remaining, Phase: e.phase})
}

// handleExpiry converts a countdown expiry into a timeout submission with
// the full limit as time taken. The countdown has already stopped itself.
func (e *Engine) handleExpiry(gen int) {
	e.mu.Lock()
	if e.closed || gen != e.timerGen || e.navigating || e.phase != PhaseAwaitingAnswer {
		e.mu.Unlock()
		return
	}
	pos := e.position
	if _, answered := e.outcomes.Get(pos); answered || e.inFlight {
		e.mu.Unlock()
		return
	}
	e.beginSubmissionLocked()
	limit := e.session.TimeLimitSeconds
	e.mu.Unlock()

	// The originating tick is gone; the submission runs on its own.
	if err := e.finishSubmission(context.Background(), pos, "", limit, true); err != nil {
		e.logger.Error("timeout submission failed",
			"session_id", e.session.ID,
			"position", pos,
			"error", err,
		)
	}
}

// ── Accessors ───────────────────────────────────────────────────────────────

// Session returns the immutable session description.
func (e *Engine) Session() *Session {
	return e.session
}

// Events returns the engine's event stream. The channel closes on Close.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Guard returns the session's interrupt guard.
func (e *Engine) Guard() *Guard {
	return e.guard
}

// Outcome returns the recorded outcome for a position, if any.
func (e *Engine) Outcome(position int) (Outcome, bool) {
	return e.outcomes.Get(position)
}

// Outcomes returns every recorded outcome ordered by position.
func (e *Engine) Outcomes() []Outcome {
	return e.outcomes.All()
}

// Completed reports whether the session reached its terminal state.
func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase == PhaseCompleted
}

// TimerRunning reports whether a countdown is actively ticking.
func (e *Engine) TimerRunning() bool {
	e.mu.Lock()
	cd := e.countdown
	e.mu.Unlock()
	return cd != nil && cd.Running()
}

// Snapshot returns a point-in-time view for display.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		SessionID:          e.session.ID,
		Mode:               e.session.Mode,
		Phase:              e.phase,
		Position:           e.position,
		TotalQuestions:     len(e.session.Questions),
		ExplanationVisible: e.explanationVisible,
		AnsweredCount:      e.outcomes.Len(),
		GuardArmed:         e.guard.Armed(),
	}
	if e.countdown != nil {
		snap.TimerRemaining = e.countdown.Remaining()
	}
	if out, ok := e.outcomes.Get(e.position); ok {
		snap.Outcome = &out
	}
	return snap
}

func (e *Engine) emitLocked(ev Event) {
	if e.closed {
		return
	}
	select {
	case e.events <- ev:
	default:
	}
}
