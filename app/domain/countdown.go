package domain

import (
	"sync"
	"time"
)

// DefaultCountdownSeconds is how long an access-denied view counts down
// before the session is forcibly torn down.
const DefaultCountdownSeconds = 5

// CountdownState represents the state of a forced de-authentication countdown
type CountdownState string

const (
	CountdownCounting CountdownState = "counting"
	CountdownExpired  CountdownState = "expired"
)

// Countdown is the forced de-authentication state machine mounted on an
// access-denied view. Seconds remaining only ever decrease; the expire
// callback fires exactly once, on natural expiry or a manual trigger.
// Stop halts ticking without firing: leaving the denied view early does
// not log the user out.
type Countdown struct {
	mu        sync.Mutex
	state     CountdownState
	remaining int
	interval  time.Duration
	onExpire  func()
	stopCh    chan struct{}
	started   bool
	stopped   bool
}

// NewCountdown creates a countdown starting at the given number of seconds.
// The interval is the wall-clock time per tick, one second in production.
func NewCountdown(seconds int, interval time.Duration, onExpire func()) *Countdown {
	if seconds <= 0 {
		seconds = DefaultCountdownSeconds
	}
	if interval <= 0 {
		interval = time.Second
	}

	return &Countdown{
		state:     CountdownCounting,
		remaining: seconds,
		interval:  interval,
		onExpire:  onExpire,
		stopCh:    make(chan struct{}),
	}
}

// Start begins ticking. Calling Start more than once is a no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.started || c.state != CountdownCounting {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			if c.tick() {
				return
			}
		}
	}
}

// tick advances the state machine by one second and reports whether the
// countdown is finished. The tick that would reach zero transitions to
// Expired instead and fires the expire callback.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.state != CountdownCounting {
		c.mu.Unlock()
		return true
	}

	if c.remaining > 1 {
		c.remaining--
		c.mu.Unlock()
		return false
	}

	c.remaining = 0
	c.state = CountdownExpired
	fire := c.onExpire
	c.mu.Unlock()

	if fire != nil {
		fire()
	}
	return true
}

// TriggerNow short-circuits to the expired state regardless of the count,
// firing the same single-shot side effect as natural expiry.
func (c *Countdown) TriggerNow() {
	c.mu.Lock()
	if c.state != CountdownCounting {
		c.mu.Unlock()
		return
	}

	c.remaining = 0
	c.state = CountdownExpired
	fire := c.onExpire
	c.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// Stop halts ticking only. It never transitions the state and never fires
// the expire callback.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stopCh)
}

// State returns the current state
func (c *Countdown) State() CountdownState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the seconds remaining
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
