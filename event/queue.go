package event

import (
	"sync/atomic"

	"github.com/lixenwraith/starlock/parameter"
)

// EventQueue buffers scene events between the goroutines that produce them
// (terminal poller, config watcher) and the frame loop that drains them once per tick.
//
// Producers claim a slot by advancing tail with CAS, write it, then raise the
// slot's ready flag. The single consumer stops at the first slot whose flag is
// still down, so a half-written event is never observed. When producers lap the
// consumer the oldest unread events are overwritten and counted in Dropped.
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool
	head  atomic.Uint64
	tail  atomic.Uint64

	dropped atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(seq uint64) uint64 {
	return seq & parameter.EventBufferMask
}

// window clamps the unread span to the ring capacity, returning the first
// readable sequence number and the span length
func window(head, tail uint64) (uint64, uint64) {
	n := tail - head
	if n > parameter.EventQueueSize {
		return tail - parameter.EventQueueSize, parameter.EventQueueSize
	}
	return head, n
}

// Push appends an event; safe from any goroutine
func (eq *EventQueue) Push(ev GameEvent) {
	var seq uint64
	for {
		seq = eq.tail.Load()
		if eq.tail.CompareAndSwap(seq, seq+1) {
			break
		}
	}

	i := slot(seq)
	eq.slots[i] = ev
	eq.ready[i].Store(true)

	// Lapped the reader: move head past the slot just overwritten
	head := eq.head.Load()
	if seq+1-head > parameter.EventQueueSize {
		if eq.head.CompareAndSwap(head, seq+1-parameter.EventQueueSize) {
			eq.dropped.Add(1)
		}
	}
}

// Consume drains every fully written event in arrival order
// Only the frame loop may call it
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if head == tail {
			return nil
		}

		from, n := window(head, tail)
		out := make([]GameEvent, 0, n)
		for seq := from; seq < from+n; seq++ {
			i := slot(seq)
			if !eq.ready[i].Load() {
				break
			}
			out = append(out, eq.slots[i])
			eq.ready[i].Store(false)
		}

		if eq.head.CompareAndSwap(head, from+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is a racy estimate of unread events, used by the status line
func (eq *EventQueue) Len() int {
	head, tail := eq.head.Load(), eq.tail.Load()
	if tail <= head {
		return 0
	}
	_, n := window(head, tail)
	return int(n)
}

// Dropped counts events overwritten before the frame loop read them
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
