// Package eventloop marshals work onto the UI event loop.
package eventloop

import "sync"

// Dispatcher runs fn on the event loop and returns once it has completed.
type Dispatcher interface {
	DoAndWait(fn func())
}

// Func adapts a function such as fyne.DoAndWait to a Dispatcher.
type Func func(fn func())

// DoAndWait implements Dispatcher.
func (dispatch Func) DoAndWait(fn func()) {
	dispatch(fn)
}

// Inline runs work on the calling goroutine.
type Inline struct{}

// DoAndWait implements Dispatcher.
func (Inline) DoAndWait(fn func()) {
	fn()
}

// Loop is a single goroutine event loop executing work in submission order.
type Loop struct {
	queue chan func()
	once  sync.Once
	done  chan struct{}
}

// NewLoop starts a loop with the given queue capacity.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = 1
	}
	loop := &Loop{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
	go loop.run()
	return loop
}

// Submit queues fn without waiting for it.
func (loop *Loop) Submit(fn func()) {
	loop.queue <- fn
}

// DoAndWait implements Dispatcher.
func (loop *Loop) DoAndWait(fn func()) {
	finished := make(chan struct{})
	loop.queue <- func() {
		defer close(finished)
		fn()
	}
	<-finished
}

// Stop drains queued work and terminates the loop.
func (loop *Loop) Stop() {
	loop.once.Do(func() {
		close(loop.queue)
	})
	<-loop.done
}

func (loop *Loop) run() {
	defer close(loop.done)
	for fn := range loop.queue {
		fn()
	}
}
