package timer

import (
	"container/heap"
	"sync"
	"time"
)

// Virtual is a manually advanced Scheduler.
//
// Callbacks run synchronously on the goroutine calling Advance, in deadline
// order and FIFO for equal deadlines. A callback may schedule further
// callbacks; those fire within the same Advance call when they fall due
// before its end.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending entryHeap
}

// NewVirtual returns a Virtual clock starting at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (v *Virtual) AfterFunc(d time.Duration, f func()) Token {
	v.mu.Lock()
	defer v.mu.Unlock()

	if d < 0 {
		d = 0
	}
	v.seq++
	e := &entry{
		clock:    v,
		deadline: v.now.Add(d),
		seq:      v.seq,
		fn:       f,
		index:    -1,
	}
	heap.Push(&v.pending, e)
	return e
}

// Advance moves the clock forward by d, firing every callback that falls due.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	end := v.now.Add(d)
	v.mu.Unlock()

	for {
		v.mu.Lock()
		if len(v.pending) == 0 || v.pending[0].deadline.After(end) {
			v.now = end
			v.mu.Unlock()
			return
		}
		e := heap.Pop(&v.pending).(*entry)
		e.fired = true
		v.now = e.deadline
		v.mu.Unlock()

		// Run outside the lock so the callback can schedule or stop timers.
		e.fn()
	}
}

// Pending returns the number of callbacks waiting to fire.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

type entry struct {
	clock    *Virtual
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
	fired    bool
}

// Stop removes the entry from the pending set.
func (e *entry) Stop() bool {
	v := e.clock
	v.mu.Lock()
	defer v.mu.Unlock()

	if e.fired || e.index < 0 {
		return false
	}
	heap.Remove(&v.pending, e.index)
	return true
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
