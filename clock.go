package desim

import "time"

// clock is the single virtual-time cell shared, read-only, with external
// observers via ClockRef. Apart from its starting value (set once by
// NewSimulation, see WithClockStart), it is written exclusively by
// Scheduler.Pop, which never lowers it: this is the load-bearing half of
// invariant I1 (spec §3).
type clock struct {
	now time.Duration
}

// ClockRef is a read-only view of a Scheduler's virtual clock. It carries no
// setter; the only way the observed time advances is another call to
// Scheduler.Pop (or Simulation.Step, which calls it internally).
type ClockRef struct {
	c *clock
}

// Time returns the current virtual time.
func (r ClockRef) Time() time.Duration {
	return r.c.now
}
