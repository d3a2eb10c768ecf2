package desim

import "fmt"

// ProtocolViolation is implemented by every typed error in the taxonomy
// described by spec §7. It lets callers recover a violation with a single
// `var pv desim.ProtocolViolation; errors.As(err, &pv)` check instead of trying each
// concrete type, while still allowing errors.As to pick out a specific cause
// when that's useful.
type ProtocolViolation interface {
	error
	// Key identifies the process whose step triggered the violation.
	Key() Key
}

// MissingComponentError indicates a step, state query, or Activate* target
// named a Key that is not currently resident in the Container -- either it
// was never registered, or it was already removed (completed, or
// explicitly removed).
type MissingComponentError struct {
	key Key
}

func (e *MissingComponentError) Key() Key { return e.key }

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("desim: no component registered for %s", e.key)
}

// PassivatedEmittedCommandError indicates a process was resumed and yielded
// a command while its recorded ProcessState was already Passivated. This
// should not occur in practice (a Passivated process is never resumed), and
// signals state corruption in the driver rather than a process bug.
type PassivatedEmittedCommandError struct {
	key Key
}

func (e *PassivatedEmittedCommandError) Key() Key { return e.key }

func (e *PassivatedEmittedCommandError) Error() string {
	return fmt.Sprintf("desim: %s emitted a command while Passivated", e.key)
}

// PassivateOnPassivatedError indicates a process yielded Passivate while its
// state was already Passivated.
type PassivateOnPassivatedError struct {
	key Key
}

func (e *PassivateOnPassivatedError) Key() Key { return e.key }

func (e *PassivateOnPassivatedError) Error() string {
	return fmt.Sprintf("desim: %s yielded Passivate while already Passivated", e.key)
}

// HoldByPassivatedError indicates a process yielded Hold while its state was
// already Passivated.
type HoldByPassivatedError struct {
	key Key
}

func (e *HoldByPassivatedError) Key() Key { return e.key }

func (e *HoldByPassivatedError) Error() string {
	return fmt.Sprintf("desim: %s yielded Hold while Passivated", e.key)
}

// ActivateAlreadyActiveError indicates an ActivateOne or ActivateMany named
// a target that was already Active at the moment of activation.
type ActivateAlreadyActiveError struct {
	key    Key
	target Key
}

func (e *ActivateAlreadyActiveError) Key() Key { return e.key }

// Target returns the peer Key that was already Active.
func (e *ActivateAlreadyActiveError) Target() Key { return e.target }

func (e *ActivateAlreadyActiveError) Error() string {
	return fmt.Sprintf("desim: %s attempted to activate %s, which is already Active", e.key, e.target)
}

// ResumeAfterCompleteError indicates an attempt to step a process that has
// already returned (and thus been removed from the Container). In practice
// this surfaces as a MissingComponentError, since completion removes the
// slot; it is kept as a distinct type for callers that specifically want to
// branch on "already completed" rather than "never existed".
type ResumeAfterCompleteError struct {
	key Key
}

func (e *ResumeAfterCompleteError) Key() Key { return e.key }

func (e *ResumeAfterCompleteError) Error() string {
	return fmt.Sprintf("desim: attempted to resume %s after it completed", e.key)
}

// ProtocolViolationError is the fatal panic value raised by the driver when
// any ProtocolViolation occurs (spec §7: "surface as fatal aborts"). It
// wraps the specific typed error as its Cause, mirroring the teacher's
// PanicError{Value any} / Unwrap shape.
type ProtocolViolationError struct {
	Cause ProtocolViolation
}

// Error implements the error interface.
func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("desim: protocol violation: %s", e.Cause.Error())
}

// Unwrap returns the underlying typed violation, for use with errors.Is and
// errors.As.
func (e *ProtocolViolationError) Unwrap() error {
	return e.Cause
}
