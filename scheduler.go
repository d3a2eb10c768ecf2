package desim

import (
	"container/heap"
	"time"
)

// EventEntry is a single pending dispatch: resume the process named by Key
// at virtual time Time. Seq breaks ties between entries scheduled for the
// same Time in FIFO insertion order (spec §3, §4.3).
type EventEntry struct {
	Time time.Duration
	Key  Key
	Seq  uint64
}

// eventHeap implements container/heap.Interface over EventEntry, ordered by
// (Time ascending, Seq ascending) -- the same min-heap-over-deadline idiom
// the teacher's Loop uses for its timerHeap, generalized with a tie-break
// field the teacher's single-priority timer queue didn't need.
type eventHeap []EventEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(EventEntry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Scheduler is a time-ordered priority queue over virtual time, owning the
// shared Clock. It has no notion of processes or actions; it only orders and
// releases Keys at their scheduled Time.
type Scheduler struct {
	events  eventHeap
	clock   *clock
	nextSeq uint64
}

// NewScheduler constructs an empty Scheduler with its clock at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{clock: &clock{}}
}

// newSchedulerWithCapacity pre-sizes the heap's backing array; used by
// WithInitialCapacity. Capacity is a performance hint only.
func newSchedulerWithCapacity(n int) *Scheduler {
	s := NewScheduler()
	if n > 0 {
		s.events = make(eventHeap, 0, n)
	}
	return s
}

// Schedule inserts an entry for key at Time() + delay. delay may be zero.
// It never fails (spec §4.3).
func (s *Scheduler) Schedule(delay time.Duration, key Key) {
	entry := EventEntry{
		Time: s.clock.now + delay,
		Key:  key,
		Seq:  s.nextSeq,
	}
	s.nextSeq++
	heap.Push(&s.events, entry)
}

// ScheduleNow is equivalent to Schedule(0, key).
func (s *Scheduler) ScheduleNow(key Key) {
	s.Schedule(0, key)
}

// Pop removes and returns the earliest entry, advancing the clock to that
// entry's Time as a side effect. It returns false iff the scheduler is
// empty, in which case the clock is left unchanged (spec §4.3).
func (s *Scheduler) Pop() (EventEntry, bool) {
	if len(s.events) == 0 {
		return EventEntry{}, false
	}
	entry := heap.Pop(&s.events).(EventEntry)
	s.clock.now = entry.Time
	return entry, true
}

// Time returns the current virtual time.
func (s *Scheduler) Time() time.Duration {
	return s.clock.now
}

// Clock hands out a shared, read-only view of the virtual clock.
func (s *Scheduler) Clock() ClockRef {
	return ClockRef{c: s.clock}
}

// Len reports the number of pending entries.
func (s *Scheduler) Len() int {
	return len(s.events)
}
