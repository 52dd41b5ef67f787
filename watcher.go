package weft

import (
	"time"

	"github.com/weftui/weft/internal/debug"
)

// Watcher is a supervised event source. The app runs every registered
// watcher in one errgroup: Watch blocks until the stop channel closes,
// feeding work onto the main-loop queue as it arrives. If any watcher
// returns a non-nil error, the whole group is considered failed and
// App.Run reports the first error after shutdown.
type Watcher interface {
	// Watch runs the watcher until stop closes. Handlers must be
	// enqueued, never invoked inline: the queue serializes them onto
	// the main loop.
	Watch(queue chan<- func(), stop <-chan struct{}) error
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a channel watcher. The handler is called on the main
// loop whenever data arrives on the channel.
//
// Example:
//
//	dataCh := make(chan string)
//	app.AddWatcher(weft.Watch(dataCh, func(s string) {
//	    // Handle received data
//	}))
func Watch[T any](ch <-chan T, handler func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{
		ch:      ch,
		handler: handler,
	}
}

// Watch feeds channel values onto the queue until stop closes or the
// channel is closed.
func (w *ChannelWatcher[T]) Watch(queue chan<- func(), stop <-chan struct{}) error {
	for {
		select {
		case <-stop:
			return nil
		case val, ok := <-w.ch:
			if !ok {
				return nil // Channel closed
			}
			v := val
			select {
			case queue <- func() { w.handler(v) }:
			case <-stop:
				return nil
			}
		}
	}
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a timer watcher that fires at the given interval.
// The handler is called on the main loop.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

func (w *timerWatcher) Watch(queue chan<- func(), stop <-chan struct{}) error {
	debug.Log("timerWatcher started (interval %v)", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			select {
			case queue <- w.handler:
			case <-stop:
				return nil
			}
		}
	}
}

// funcWatcher adapts a plain function to the Watcher interface.
type funcWatcher func(queue chan<- func(), stop <-chan struct{}) error

func (w funcWatcher) Watch(queue chan<- func(), stop <-chan struct{}) error {
	return w(queue, stop)
}

// WatchFunc wraps fn as a Watcher. Use this for event sources that need
// their own setup/teardown or that can fail: the returned error is
// surfaced through App.Run.
func WatchFunc(fn func(queue chan<- func(), stop <-chan struct{}) error) Watcher {
	return funcWatcher(fn)
}
