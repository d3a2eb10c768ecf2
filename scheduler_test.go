package desim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_PopEmpty(t *testing.T) {
	s := NewScheduler()
	_, ok := s.Pop()
	require.False(t, ok)
	require.Equal(t, time.Duration(0), s.Time())
}

// TestScheduler_MonotonicClock covers P1: the clock observed across
// successive pops is never lower than the previous observation, no matter
// the insertion order of delays.
func TestScheduler_MonotonicClock(t *testing.T) {
	s := NewScheduler()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s.Schedule(time.Duration(rng.Intn(1000)), newKey(i))
	}

	var last time.Duration
	for {
		entry, ok := s.Pop()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, entry.Time, last)
		require.GreaterOrEqual(t, s.Time(), last)
		last = entry.Time
	}
}

// TestScheduler_FIFOTieBreak covers P2: entries scheduled for the same
// virtual time pop in insertion order.
func TestScheduler_FIFOTieBreak(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 10; i++ {
		s.Schedule(5*time.Second, newKey(i))
	}

	for i := 0; i < 10; i++ {
		entry, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, newKey(i), entry.Key)
		require.Equal(t, 5*time.Second, entry.Time)
	}
}

func TestScheduler_ScheduleNowUsesCurrentTime(t *testing.T) {
	s := NewScheduler()
	s.Schedule(3*time.Second, newKey(0))
	_, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3*time.Second, s.Time())

	s.ScheduleNow(newKey(1))
	entry, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3*time.Second, entry.Time)
}

func TestScheduler_LenAndClockRef(t *testing.T) {
	s := NewScheduler()
	require.Equal(t, 0, s.Len())
	s.Schedule(0, newKey(0))
	s.Schedule(time.Second, newKey(1))
	require.Equal(t, 2, s.Len())

	ref := s.Clock()
	require.Equal(t, time.Duration(0), ref.Time())
	s.Pop()
	require.Equal(t, time.Duration(0), ref.Time())
	s.Pop()
	require.Equal(t, time.Second, ref.Time())
}

func TestScheduler_PopDoesNotAdvanceClockWhenEmpty(t *testing.T) {
	s := NewScheduler()
	s.Schedule(5*time.Second, newKey(0))
	s.Pop()
	require.Equal(t, 5*time.Second, s.Time())

	_, ok := s.Pop()
	require.False(t, ok)
	require.Equal(t, 5*time.Second, s.Time())
}
