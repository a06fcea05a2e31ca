// Package timer schedules the kiosk's timer-driven transitions.
//
// Scheduler abstracts time.AfterFunc so the flow controller can run against
// the wall clock in production and a Virtual clock in tests, where Advance
// fires due callbacks deterministically.
package timer

import "time"

// Token cancels a scheduled callback.
type Token interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Token
}

// Real is a Scheduler backed by the runtime timers.
type Real struct{}

// NewReal returns the wall-clock scheduler.
func NewReal() Real { return Real{} }

// Now returns the current wall-clock time.
func (Real) Now() time.Time { return time.Now() }

// AfterFunc calls f in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) Token {
	return time.AfterFunc(d, f)
}

// Group is the set of timers owned by one screen or sub-state.
//
// Stop cancels every timer in the group and bumps the generation. Callbacks
// capture the generation when they are scheduled and must compare it with
// Generation before acting, which catches callbacks that fired but had not
// yet run when the group was stopped. Group is not safe for concurrent use;
// the owner serializes access.
type Group struct {
	gen    uint64
	tokens []Token
}

// Generation identifies the current lifetime of the group.
func (g *Group) Generation() uint64 {
	return g.gen
}

// Add tracks a token so Stop can cancel it.
func (g *Group) Add(t Token) {
	g.tokens = append(g.tokens, t)
}

// Active reports whether the group holds timers from its current generation.
func (g *Group) Active() bool {
	return len(g.tokens) > 0
}

// Stop cancels every tracked timer and starts a new generation.
func (g *Group) Stop() {
	for _, t := range g.tokens {
		t.Stop()
	}
	g.tokens = nil
	g.gen++
}
