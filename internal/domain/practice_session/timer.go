package practicesession

import (
	"sync"
	"time"
)

// Ticker abstracts time.Ticker so tests can drive simulated ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds the tick source for a countdown. The default wraps
// time.NewTicker at a one second interval.
type TickerFactory func(interval time.Duration) Ticker

type realTicker struct{ *time.Ticker }

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

func defaultTicker(interval time.Duration) Ticker {
	return realTicker{time.NewTicker(interval)}
}

// Countdown is the per-question timer. Exactly one countdown goroutine runs
// per Start; Start on a running countdown stops the previous run first, so
// two countdowns can never tick concurrently.
//
// The remaining seconds are read under the countdown's own lock at tick
// time, never captured by the goroutine at start, so a tick that arrives
// after Stop observes the stopped state and does nothing.
type Countdown struct {
	mu        sync.Mutex
	limit     int
	remaining int
	running   bool
	done      chan struct{}

	newTicker TickerFactory
	onTick    func(remaining int)
	onExpire  func(limit int)
}

// NewCountdown creates a stopped countdown. onTick is invoked after every
// decrement that leaves time on the clock; onExpire is invoked exactly once,
// after the countdown has stopped itself, at the tick that reaches zero.
// Either callback may be nil.
func NewCountdown(factory TickerFactory, onTick func(remaining int), onExpire func(limit int)) *Countdown {
	if factory == nil {
		factory = defaultTicker
	}
	return &Countdown{
		newTicker: factory,
		onTick:    onTick,
		onExpire:  onExpire,
	}
}

// Start resets the remaining seconds to limit and begins ticking once per
// second. Any previous run is stopped first.
func (c *Countdown) Start(limit int) {
	c.mu.Lock()
	c.stopLocked()
	c.limit = limit
	c.remaining = limit
	c.running = true
	done := make(chan struct{})
	c.done = done
	c.mu.Unlock()

	ticker := c.newTicker(time.Second)
	go c.run(ticker, done)
}

func (c *Countdown) run(ticker Ticker, done chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C():
			if !c.tick() {
				return
			}
		case <-done:
			return
		}
	}
}

// tick decrements the clock. It reports false once the countdown is no
// longer running so the goroutine exits.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return false
	}
	c.remaining--
	remaining := c.remaining
	limit := c.limit
	expired := remaining <= 0
	if expired {
		// Stop before signaling so no second tick can fire while the
		// expiry submission is in flight.
		c.stopLocked()
	}
	c.mu.Unlock()

	if expired {
		if c.onExpire != nil {
			c.onExpire(limit)
		}
		return false
	}
	if c.onTick != nil {
		c.onTick(remaining)
	}
	return true
}

// Stop halts the countdown. It is idempotent and safe to call when no
// countdown is running. The displayed remaining seconds are preserved.
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
}

func (c *Countdown) stopLocked() {
	if !c.running {
		return
	}
	c.running = false
	close(c.done)
}

// Remaining returns the seconds currently left on the clock. It is valid on
// a stopped countdown, where it reports the value frozen at stop time.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// SetRemaining overrides the displayed seconds without starting the clock.
// Used when re-entering an answered question, where the timer shows the time
// that was left at submission but must not run.
func (c *Countdown) SetRemaining(seconds int) {
	c.mu.Lock()
	c.stopLocked()
	c.remaining = seconds
	c.mu.Unlock()
}

// Running reports whether the countdown is actively ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
