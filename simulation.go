package desim

import "time"

// ShouldContinue is the driver's signal of whether Step productively
// advanced the simulation (Advance) or found the event queue empty (Break),
// per spec §4.6.
type ShouldContinue int

const (
	// Advance indicates one event was popped and dispatched.
	Advance ShouldContinue = iota
	// Break indicates the event queue was empty; this is the normal,
	// non-fatal end of a run (spec §7 "Non-fatal termination").
	Break
)

// Simulation composes one Scheduler and one Container, plus the resume-value
// type R every registered process exchanges with the driver (spec §3
// "Simulation"). It is the sole entry point that enforces the
// Active/Passivated protocol described in spec §4.6; Scheduler and Container
// are individually oblivious to it.
type Simulation[R any] struct {
	scheduler *Scheduler
	container *Container[R]
	logger    simLogger
}

// NewSimulation constructs an empty Simulation. Options are applied in
// order; the first error returned by any option aborts construction.
func NewSimulation[R any](opts ...SimulationOption) (*Simulation[R], error) {
	cfg, err := resolveSimulationOptions(opts)
	if err != nil {
		return nil, err
	}

	var scheduler *Scheduler
	if cfg.initialCapacity > 0 {
		scheduler = newSchedulerWithCapacity(cfg.initialCapacity)
	} else {
		scheduler = NewScheduler()
	}
	scheduler.clock.now = cfg.clockStart

	var container *Container[R]
	if cfg.initialCapacity > 0 {
		container = newContainerWithCapacity[R](cfg.initialCapacity)
	} else {
		container = NewContainer[R]()
	}

	return &Simulation[R]{
		scheduler: scheduler,
		container: container,
		logger:    cfg.logger,
	}, nil
}

// AddProcess registers fn with the Container and returns its fresh Key. The
// process's ProcessState is Active immediately (spec invariant I5); it is
// not scheduled to run until Schedule or ScheduleNow is called.
func (s *Simulation[R]) AddProcess(fn ProcessFunc[R]) Key {
	return s.container.AddProcess(fn)
}

// Schedule delegates to the Scheduler. The driver does not validate that key
// is Active at scheduling time; validation happens at dispatch (spec §4.6).
func (s *Simulation[R]) Schedule(delay time.Duration, key Key) {
	s.logger.logSchedule(key, delay == 0)
	s.scheduler.Schedule(delay, key)
}

// ScheduleNow is equivalent to Schedule(0, key).
func (s *Simulation[R]) ScheduleNow(key Key) {
	s.logger.logSchedule(key, true)
	s.scheduler.ScheduleNow(key)
}

// Time returns the current virtual time.
func (s *Simulation[R]) Time() time.Duration {
	return s.scheduler.Time()
}

// Clock hands out a shared, read-only view of the virtual clock.
func (s *Simulation[R]) Clock() ClockRef {
	return s.scheduler.Clock()
}

// Len returns the number of live (not completed or removed) processes.
func (s *Simulation[R]) Len() int {
	return s.container.Len()
}

// IsEmpty reports whether no live processes remain.
func (s *Simulation[R]) IsEmpty() bool {
	return s.container.IsEmpty()
}

// GetComponentState returns the ProcessState of key, or false if key no
// longer (or never did) name a live process.
func (s *Simulation[R]) GetComponentState(key Key) (ProcessState, bool) {
	return s.container.GetState(key)
}

// Close releases every process goroutine still parked in yield (spec §5
// "When a simulation is dropped, every process it owns is released") and
// drops every registered process, run or not, so Len reports zero afterwards.
// It is safe to call more than once.
func (s *Simulation[R]) Close() {
	s.container.Close()
}

// abort logs cause at error level, then panics with a ProtocolViolationError
// wrapping it (spec §7: these "surface as fatal aborts ... never recovered
// locally").
func (s *Simulation[R]) abort(cause ProtocolViolation) {
	s.logger.logViolation(cause)
	panic(&ProtocolViolationError{Cause: cause})
}

// mustGetState returns the ProcessState of key, aborting with
// MissingComponentError if the slot is empty -- every dispatch path in
// StepWith below requires this, per spec §4.6's "if the slot is empty, fatal".
func (s *Simulation[R]) mustGetState(key Key) ProcessState {
	state, ok := s.container.GetState(key)
	if !ok {
		s.abort(&MissingComponentError{key: key})
	}
	return state
}

// StepWith executes exactly one driver iteration: pop the earliest event,
// resume its process with resume, and interpret the result (spec §4.6). It
// returns Break iff the scheduler was empty.
func (s *Simulation[R]) StepWith(resume R) ShouldContinue {
	entry, ok := s.scheduler.Pop()
	if !ok {
		return Break
	}
	s.logger.logPop(entry)

	key := entry.Key
	step, ok := s.container.StepWith(key, resume)
	if !ok {
		s.abort(&MissingComponentError{key: key})
	}

	if step.Complete {
		s.logger.logComplete(key)
		return Advance
	}

	s.logger.logAction(key, step.Action)
	s.dispatch(key, step.Action)
	return Advance
}

// dispatch interprets one yielded Action under the Active/Passivated
// protocol described by spec §4.6.
func (s *Simulation[R]) dispatch(key Key, action Action) {
	switch action.Kind() {
	case ActionHold:
		if s.mustGetState(key) == Passivated {
			s.abort(&HoldByPassivatedError{key: key})
		}
		s.Schedule(action.Duration(), key)

	case ActionPassivate:
		if s.mustGetState(key) == Passivated {
			s.abort(&PassivateOnPassivatedError{key: key})
		}
		s.container.SetState(key, Passivated)

	case ActionActivateOne:
		if s.mustGetState(key) == Passivated {
			s.abort(&PassivatedEmittedCommandError{key: key})
		}
		s.ScheduleNow(key)
		s.activate(key, action.Target())

	case ActionActivateMany:
		if s.mustGetState(key) == Passivated {
			s.abort(&PassivatedEmittedCommandError{key: key})
		}
		s.ScheduleNow(key)
		for _, target := range action.Targets() {
			s.activate(key, target)
		}
	}
}

// activate promotes the Passivated peer named by target to Active and
// schedules it now, aborting if target is missing or already Active (spec
// §4.6, §9 "duplicated keys ... recommended: reject").
func (s *Simulation[R]) activate(key, target Key) {
	targetState, ok := s.container.GetState(target)
	if !ok {
		s.abort(&MissingComponentError{key: target})
	}
	if targetState == Active {
		s.abort(&ActivateAlreadyActiveError{key: key, target: target})
	}
	s.container.SetState(target, Active)
	s.ScheduleNow(target)
}

// Step executes one driver iteration, resuming the dispatched process with
// the zero value of R. It is the convenience entry point for simulations
// whose resume type carries no information the process actually inspects
// (spec §6's "resume type is unit" case, generalized: Go has no single unit
// type, so any R's zero value serves the same role).
func (s *Simulation[R]) Step() ShouldContinue {
	var zero R
	return s.StepWith(zero)
}

// RunUntilEmpty repeatedly steps the simulation until the event queue
// drains.
func (s *Simulation[R]) RunUntilEmpty() {
	for s.Step() == Advance {
	}
}

// RunWithLimit repeatedly steps the simulation until the event queue drains
// or Time() reaches or exceeds limit, whichever happens first. The check is
// performed between iterations, never mid-step (spec §5 "Cancellation /
// timeouts").
func (s *Simulation[R]) RunWithLimit(limit time.Duration) {
	for {
		if s.Time() >= limit {
			return
		}
		if s.Step() != Advance {
			return
		}
	}
}
