// Package desim provides a cooperative discrete-event simulation core: a
// coroutine container that owns user-defined processes, a time-ordered
// event queue with a monotonic virtual clock, and a driver that interprets
// yielded commands under a strict Active/Passivated protocol.
//
// # Architecture
//
// A [Simulation] composes a [Scheduler] (a min-heap over (virtual time, seq)
// owning the virtual clock, read through a [ClockRef]) and a [Container] (a dense slice of [Key] -> process
// slots). Processes are registered with [Simulation.AddProcess], obtaining a
// stable [Key], and are driven by repeatedly popping the earliest
// [EventEntry] from the Scheduler, resuming the corresponding process, and
// interpreting the yielded [Action] ([Hold], [Passivate], [ActivateOne],
// [ActivateMany]).
//
// # Process Realization
//
// Go has no native suspendable-generator primitive, so each process runs on
// its own goroutine, exchanging resume values and yielded actions with the
// driver over a pair of unbuffered channels (see [ProcessFunc]). Only one of
// the driver goroutine and the currently-running process goroutine is ever
// runnable at a time; the simulation itself remains strictly single-threaded
// in its observable semantics.
//
// # Protocol Violations
//
// All error conditions described by this package are programming bugs, not
// recoverable runtime conditions (see [ProtocolViolationError] and its
// wrapped causes). The driver logs the violation, then panics; callers that
// want a recoverable boundary should recover() at the edge of their own
// goroutine and inspect the error with errors.As.
//
// # Usage
//
//	sim, err := desim.NewSimulation[any]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	key := sim.AddProcess(func(ctx context.Context, yield func(desim.Action) any) {
//	    yield(desim.Hold(5 * time.Second))
//	})
//	sim.ScheduleNow(key)
//	sim.RunUntilEmpty()
//	sim.Close()
package desim
