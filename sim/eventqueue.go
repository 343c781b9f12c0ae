package sim

import (
	"container/heap"
	"sync"
)

// EventQueue holds the events that have not happened yet.
type EventQueue interface {
	Push(evt Event)
	Pop() Event
	Len() int
	Peek() Event
}

// TimeOrderedQueue is a thread-safe EventQueue. Events pop in time order.
// Events of the same time pop in the order they were pushed, so that blocks
// ticking at the same time are evaluated in a reproducible order.
type TimeOrderedQueue struct {
	lock    sync.Mutex
	entries queueEntries
	pushed  uint64
}

// NewEventQueue creates an empty TimeOrderedQueue.
func NewEventQueue() *TimeOrderedQueue {
	return &TimeOrderedQueue{}
}

// Push adds an event.
func (q *TimeOrderedQueue) Push(evt Event) {
	q.lock.Lock()
	defer q.lock.Unlock()

	heap.Push(&q.entries, queueEntry{evt: evt, seq: q.pushed})
	q.pushed++
}

// Pop removes and returns the earliest event.
func (q *TimeOrderedQueue) Pop() Event {
	q.lock.Lock()
	defer q.lock.Unlock()

	return heap.Pop(&q.entries).(queueEntry).evt
}

// Len returns the number of queued events.
func (q *TimeOrderedQueue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return len(q.entries)
}

// Peek returns the earliest event without removing it.
func (q *TimeOrderedQueue) Peek() Event {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.entries[0].evt
}

type queueEntry struct {
	evt Event
	seq uint64
}

type queueEntries []queueEntry

func (h queueEntries) Len() int { return len(h) }

func (h queueEntries) Less(i, j int) bool {
	ti, tj := h[i].evt.Time(), h[j].evt.Time()
	if ti != tj {
		return ti < tj
	}

	return h[i].seq < h[j].seq
}

func (h queueEntries) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *queueEntries) Push(x any) {
	*h = append(*h, x.(queueEntry))
}

func (h *queueEntries) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]

	return entry
}
