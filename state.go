package desim

// ProcessState represents where a process sits in the Active/Passivated
// lifecycle described by spec §3. Unlike the teacher's LoopState (a
// lock-free, atomically-transitioned state machine for a concurrently-driven
// event loop), ProcessState is a plain value: the simulation driver is the
// sole writer, and it never runs two processes concurrently, so no
// synchronization is required.
//
// State Machine:
//
//	Active -> Passivated   [process yields Passivate]
//	Passivated -> Active   [a peer yields ActivateOne/ActivateMany naming this Key]
//
// Any other attempted transition (a Passivated process yielding Hold,
// Passivate, or Activate*; or activating an already-Active peer) is a
// protocol violation (spec §4.6, §7).
type ProcessState int

const (
	// Active indicates the process may be stepped; this is the state every
	// process starts in upon registration (spec invariant I5).
	Active ProcessState = iota
	// Passivated indicates the process is suspended indefinitely, pending
	// activation by a peer.
	Passivated
)

// String returns a human-readable representation of the state, used in log
// records and panic diagnostics.
func (s ProcessState) String() string {
	switch s {
	case Active:
		return "Active"
	case Passivated:
		return "Passivated"
	default:
		return "Unknown"
	}
}
