package timekeeper

import "sync"

// subscriber delivers events to one observer channel without blocking the
// timer. When the channel is full, events queue up in order and a flusher
// goroutine hands them over. State changes are never dropped; queued
// progress events collapse into the latest one.
type subscriber struct {
	ch   chan Event
	done chan struct{}

	mu       sync.Mutex
	pending  []Event
	flushing bool
	closed   bool
}

func newSubscriber(buffer int) *subscriber {
	return &subscriber{
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
}

func (sub *subscriber) deliver(event Event) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	if len(sub.pending) == 0 {
		select {
		case sub.ch <- event:
			return
		default:
		}
	}

	// The head is being handed over by flush, so it is never replaced.
	last := len(sub.pending) - 1
	if event.Type == EventProgress && last > 0 && sub.pending[last].Type == EventProgress {
		sub.pending[last] = event
	} else {
		sub.pending = append(sub.pending, event)
	}
	if !sub.flushing {
		sub.flushing = true
		go sub.flush()
	}
}

func (sub *subscriber) flush() {
	for {
		sub.mu.Lock()
		if sub.closed || len(sub.pending) == 0 {
			sub.flushing = false
			if sub.closed {
				close(sub.ch)
			}
			sub.mu.Unlock()
			return
		}
		event := sub.pending[0]
		sub.mu.Unlock()

		select {
		case sub.ch <- event:
		case <-sub.done:
			continue
		}

		sub.mu.Lock()
		if len(sub.pending) > 0 {
			sub.pending = sub.pending[1:]
		}
		sub.mu.Unlock()
	}
}

// close ends delivery. Queued events are discarded.
func (sub *subscriber) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.closed = true
	sub.pending = nil
	close(sub.done)
	if !sub.flushing {
		close(sub.ch)
	}
}
