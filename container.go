package desim

import "context"

// slot holds one registered process alongside its current ProcessState.
// A nil handle marks a removed (tombstoned) slot: spec §4.4 requires that
// removal never shift or renumber surviving Keys, so Container is a dense
// append-only slice rather than a compacting map.
type slot[R any] struct {
	handle *processHandle[R]
	state  ProcessState
}

// Step is the outcome of stepping a process: either it yielded an Action or
// it completed. It carries no ProcessState; the driver reads Container state
// separately.
type Step struct {
	Action   Action
	Complete bool
}

// Container owns every registered process and its ProcessState, keyed by a
// dense, never-reused Key (spec §3 "Container", §4.4). It has no notion of
// time or scheduling; those are the Scheduler's and Simulation's concerns.
type Container[R any] struct {
	slots  []slot[R]
	cancel context.CancelFunc
	ctx    context.Context
}

// NewContainer constructs an empty Container. The returned Container must be
// closed (via Close) once it is no longer needed, to release any process
// goroutines still parked in yield.
func NewContainer[R any]() *Container[R] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container[R]{ctx: ctx, cancel: cancel}
}

// newContainerWithCapacity pre-sizes the backing slice; a performance hint
// only, used by WithInitialCapacity.
func newContainerWithCapacity[R any](n int) *Container[R] {
	c := NewContainer[R]()
	if n > 0 {
		c.slots = make([]slot[R], 0, n)
	}
	return c
}

// AddProcess appends a new slot holding (fn, Active) and returns its fresh
// Key. Key allocation is strictly monotonic and equal to the insertion
// index (spec §4.4).
func (c *Container[R]) AddProcess(fn ProcessFunc[R]) Key {
	key := newKey(len(c.slots))
	c.slots = append(c.slots, slot[R]{
		handle: newProcessHandle(c.ctx, fn),
		state:  Active,
	})
	return key
}

// Remove detaches the slot named by key without renumbering any surviving
// Key. It returns false if the slot was already empty or key was never
// valid.
func (c *Container[R]) Remove(key Key) bool {
	if key.id < 0 || key.id >= len(c.slots) || c.slots[key.id].handle == nil {
		return false
	}
	c.slots[key.id] = slot[R]{}
	return true
}

// StepWith resumes the process at key with resume, returning either the
// yielded Action or completion. It reports false, without stepping anything,
// if the slot is empty; a completed process's slot is emptied here.
func (c *Container[R]) StepWith(key Key, resume R) (Step, bool) {
	if key.id < 0 || key.id >= len(c.slots) || c.slots[key.id].handle == nil {
		return Step{}, false
	}
	msg := c.slots[key.id].handle.stepWith(resume)
	if msg.done {
		c.slots[key.id] = slot[R]{}
		return Step{Complete: true}, true
	}
	return Step{Action: msg.action}, true
}

// GetState returns the ProcessState of the slot named by key, or false if
// the slot is empty.
func (c *Container[R]) GetState(key Key) (ProcessState, bool) {
	if key.id < 0 || key.id >= len(c.slots) || c.slots[key.id].handle == nil {
		return 0, false
	}
	return c.slots[key.id].state, true
}

// SetState overwrites the ProcessState of the slot named by key. It reports
// false if the slot is empty.
func (c *Container[R]) SetState(key Key, state ProcessState) bool {
	if key.id < 0 || key.id >= len(c.slots) || c.slots[key.id].handle == nil {
		return false
	}
	c.slots[key.id].state = state
	return true
}

// Len returns the number of occupied slots.
func (c *Container[R]) Len() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].handle != nil {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the Container holds no live processes.
func (c *Container[R]) IsEmpty() bool {
	return c.Len() == 0
}

// Close cancels every process goroutine still parked in yield (spec §5
// "When a simulation is dropped, every process it owns is released") and
// clears the Container. It is safe to call more than once.
func (c *Container[R]) Close() {
	c.cancel()
	c.slots = nil
}
