package flow

import (
	"log/slog"

	"github.com/mmynk/drinko/internal/timer"
)

type idleState struct {
	timers timer.Group
	active bool
	left   int
}

func (s *idleState) stop() {
	s.timers.Stop()
	s.active = false
	s.left = 0
}

// startIdleLocked (re)starts the inactivity countdown at its full length.
func (c *Controller) startIdleLocked() {
	c.idle.timers.Stop()
	c.idle.active = true
	c.idle.left = c.cfg.idleSeconds()
	c.scheduleIdleTickLocked()
}

func (c *Controller) scheduleIdleTickLocked() {
	c.after(&c.idle.timers, c.cfg.IdleTick, func() {
		c.idle.left--
		c.dirty = true
		if c.idle.left <= 0 {
			c.idleExpiredLocked()
			return
		}
		c.scheduleIdleTickLocked()
	})
}

// touchLocked resets the countdown on screens where it runs.
func (c *Controller) touchLocked() {
	if !c.idle.active {
		return
	}
	if c.idle.left != c.cfg.idleSeconds() {
		c.dirty = true
	}
	c.startIdleLocked()
}

func (c *Controller) idleExpiredLocked() {
	slog.Info("Session idle, resetting", "screen", c.screen, "lines", c.store.Len())
	c.store.Reset()
	c.enterLocked(ScreenWelcome)
	c.emit(c.hooks.OnIdleTimeout)
}
