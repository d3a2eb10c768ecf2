package desim

import "strconv"

// Key is an opaque, stable handle for a process registered with a
// Container. Keys are cheap value types: comparable, hashable, and safe to
// copy freely. A Key is unique within the Simulation that issued it for the
// lifetime of that Simulation and is never reused after the slot it names is
// removed.
type Key struct {
	id int
}

// newKey constructs a Key from a non-negative slot index. It is unexported:
// Keys are only ever minted by Container.AddProcess.
func newKey(id int) Key {
	return Key{id: id}
}

// ID returns the integer handle backing this Key. It is exposed for
// diagnostics and error messages; callers should otherwise treat Key as
// opaque.
func (k Key) ID() int {
	return k.id
}

// String implements fmt.Stringer for diagnostic output.
func (k Key) String() string {
	return "Key(" + strconv.Itoa(k.id) + ")"
}
