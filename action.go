package desim

import "time"

// ActionKind discriminates the variants of Action.
type ActionKind int

const (
	// ActionHold reschedules the yielding process `Duration` units into the
	// future; its ProcessState is left Active.
	ActionHold ActionKind = iota
	// ActionPassivate transitions the yielding process Active -> Passivated
	// and does not reschedule it.
	ActionPassivate
	// ActionActivateOne wakes a single Passivated peer now, and reschedules
	// the yielding process now as well.
	ActionActivateOne
	// ActionActivateMany wakes a set of Passivated peers now, in order, and
	// reschedules the yielding process now as well.
	ActionActivateMany
)

// String returns a human-readable name for the ActionKind, used in log
// records and panic diagnostics.
func (k ActionKind) String() string {
	switch k {
	case ActionHold:
		return "Hold"
	case ActionPassivate:
		return "Passivate"
	case ActionActivateOne:
		return "ActivateOne"
	case ActionActivateMany:
		return "ActivateMany"
	default:
		return "Unknown"
	}
}

// Action is the tagged union of commands a process may yield to the driver.
// Construct instances with Hold, Passivate, ActivateOne, or ActivateMany; the
// zero value is not a valid Action.
type Action struct {
	kind     ActionKind
	duration time.Duration
	target   Key
	targets  []Key
}

// Hold constructs an Action that reschedules the yielding process `d` units
// into the future. A zero duration is legal and coincides with ScheduleNow.
func Hold(d time.Duration) Action {
	return Action{kind: ActionHold, duration: d}
}

// Passivate constructs an Action that suspends the yielding process
// indefinitely. The process is not rescheduled; only a peer's ActivateOne or
// ActivateMany can resume it.
func Passivate() Action {
	return Action{kind: ActionPassivate}
}

// ActivateOne constructs an Action that wakes the Passivated peer `key` and
// reschedules the yielding process now, before the woken peer.
func ActivateOne(key Key) Action {
	return Action{kind: ActionActivateOne, target: key}
}

// ActivateMany constructs an Action that wakes each Passivated peer in
// `keys`, in order, and reschedules the yielding process now, before all of
// them. Duplicate keys are a protocol violation: the second occurrence of a
// key already promoted to Active this step is treated as "already active".
func ActivateMany(keys []Key) Action {
	targets := make([]Key, len(keys))
	copy(targets, keys)
	return Action{kind: ActionActivateMany, targets: targets}
}

// Kind reports which variant this Action holds.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Duration returns the Hold duration. It is meaningless for any other Kind.
func (a Action) Duration() time.Duration {
	return a.duration
}

// Target returns the peer Key for ActivateOne. It is meaningless for any
// other Kind.
func (a Action) Target() Key {
	return a.target
}

// Targets returns the peer Keys for ActivateMany, in the order they were
// supplied. It is meaningless for any other Kind.
func (a Action) Targets() []Key {
	return a.targets
}
