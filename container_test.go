package desim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainer_AddProcessKeysAreDenseAndMonotonic(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	var keys []Key
	for i := 0; i < 5; i++ {
		keys = append(keys, c.AddProcess(func(ctx context.Context, yield func(Action) any) {}))
	}
	for i, k := range keys {
		require.Equal(t, i, k.ID())
	}
}

func TestContainer_InitialStateIsActive(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	k := c.AddProcess(func(ctx context.Context, yield func(Action) any) {})
	state, ok := c.GetState(k)
	require.True(t, ok)
	require.Equal(t, Active, state)
}

func TestContainer_RemoveTombstonesWithoutRenumbering(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	k0 := c.AddProcess(func(ctx context.Context, yield func(Action) any) {})
	k1 := c.AddProcess(func(ctx context.Context, yield func(Action) any) {})

	require.True(t, c.Remove(k0))
	_, ok := c.GetState(k0)
	require.False(t, ok)

	// k1 keeps identifying the same slot.
	state, ok := c.GetState(k1)
	require.True(t, ok)
	require.Equal(t, Active, state)

	require.False(t, c.Remove(k0))
}

func TestContainer_StepWithYieldsActionsInOrder(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	k := c.AddProcess(func(ctx context.Context, yield func(Action) any) {
		yield(Hold(0))
		yield(Hold(0))
	})

	step, ok := c.StepWith(k, nil)
	require.True(t, ok)
	require.False(t, step.Complete)
	require.Equal(t, ActionHold, step.Action.Kind())

	step, ok = c.StepWith(k, nil)
	require.True(t, ok)
	require.False(t, step.Complete)

	step, ok = c.StepWith(k, nil)
	require.True(t, ok)
	require.True(t, step.Complete)

	_, ok = c.GetState(k)
	require.False(t, ok, "completion must tombstone the slot")
}

func TestContainer_StepWithPassesResumeValue(t *testing.T) {
	c := NewContainer[int]()
	defer c.Close()

	var seen []int
	k := c.AddProcess(func(ctx context.Context, yield func(Action) int) {
		seen = append(seen, yield(Hold(0)))
		seen = append(seen, yield(Hold(0)))
	})

	c.StepWith(k, 1)
	c.StepWith(k, 2)
	c.StepWith(k, 3)

	require.Equal(t, []int{2, 3}, seen)
}

func TestContainer_StepWithMissingKeyReturnsFalse(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	_, ok := c.StepWith(newKey(42), nil)
	require.False(t, ok)
}

func TestContainer_SetStateMissingKeyReturnsFalse(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	require.False(t, c.SetState(newKey(0), Passivated))
}

func TestContainer_LenAndIsEmpty(t *testing.T) {
	c := NewContainer[any]()
	defer c.Close()

	require.True(t, c.IsEmpty())
	k := c.AddProcess(func(ctx context.Context, yield func(Action) any) {})
	require.Equal(t, 1, c.Len())
	require.False(t, c.IsEmpty())

	c.Remove(k)
	require.True(t, c.IsEmpty())
}

func TestContainer_CloseUnblocksParkedProcess(t *testing.T) {
	c := NewContainer[any]()

	started := make(chan struct{})
	k := c.AddProcess(func(ctx context.Context, yield func(Action) any) {
		close(started)
		yield(Passivate())
	})

	c.StepWith(k, nil)
	<-started

	// The process goroutine is now parked in yield's select, waiting on
	// either resumeCh or ctx.Done(). Close must unwind it without the test
	// hanging.
	c.Close()
}
