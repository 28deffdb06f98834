package practicesession

import "sync"

// LeaveDecision tells the caller what to do with an attempt to navigate away
// from the session.
type LeaveDecision string

const (
	// LeaveAllowed means the guard is released; navigate freely.
	LeaveAllowed LeaveDecision = "allowed"
	// LeaveBlocked means the navigation must be reverted and a warning
	// shown; the session keeps running.
	LeaveBlocked LeaveDecision = "blocked"
	// LeaveConfirm means the platform's native confirm-leave affordance
	// must be raised before the page may close.
	LeaveConfirm LeaveDecision = "confirm"
)

const leaveWarning = "You cannot go back during a quiz session. Use Exit Session to leave."

// Guard intercepts history navigation and page-unload attempts while a
// session is in progress. It is armed once the question list has loaded and
// released when the session reaches its terminal state, so normal completion
// navigates freely. An explicit exit bypasses the guard by design.
type Guard struct {
	mu    sync.Mutex
	armed bool
}

func NewGuard() *Guard {
	return &Guard{}
}

// Arm installs the interception. Idempotent.
func (g *Guard) Arm() {
	g.mu.Lock()
	g.armed = true
	g.mu.Unlock()
}

// Disarm releases the interception. Idempotent.
func (g *Guard) Disarm() {
	g.mu.Lock()
	g.armed = false
	g.mu.Unlock()
}

func (g *Guard) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// HistoryBack decides a back/forward history attempt. While armed the
// attempt is blocked and reverted with a non-blocking warning.
func (g *Guard) HistoryBack() (LeaveDecision, string) {
	if !g.Armed() {
		return LeaveAllowed, ""
	}
	return LeaveBlocked, leaveWarning
}

// PageUnload decides a close/reload attempt. While armed the caller must
// raise the native confirm-leave prompt.
func (g *Guard) PageUnload() LeaveDecision {
	if !g.Armed() {
		return LeaveAllowed
	}
	return LeaveConfirm
}
