package buzzin

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Signal is the meaning of a button press
type Signal byte

const (
	SignalPrimary Signal = iota
	SignalSkip
	SignalReconfigure
)

func (s Signal) String() string {
	switch s {
	case SignalPrimary:
		return "primary"
	case SignalSkip:
		return "skip"
	case SignalReconfigure:
		return "reconfigure"
	default:
		return "unknown"
	}
}

// Event is a signal produced by a device
type Event struct {
	Device DeviceID
	Signal Signal
}

type Handler func(Event)

const DefaultBusCapacity = 64

// Bus fans in events from any number of publishers and delivers them one at a
// time, in arrival order, to its handlers.
type Bus struct {
	queue chan Event

	// held while handlers run
	deliver  sync.Mutex
	mu       sync.RWMutex
	handlers []Handler

	closed chan struct{}
	once   sync.Once
}

func NewBus(capacity int) *Bus {
	if capacity < 1 {
		capacity = DefaultBusCapacity
	}

	return &Bus{
		queue:    make(chan Event, capacity),
		handlers: make([]Handler, 0, 1),
		closed:   make(chan struct{}),
	}
}

// Subscribe registers a handler. Handlers are called in registration order.
func (b *Bus) Subscribe(h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, h)

	return len(b.handlers)
}

// Publish queues e. It blocks while the queue is full.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	select {
	case <-b.closed:
		return ErrBusClosed
	default:
	}

	select {
	case b.queue <- e:
		return nil
	case <-b.closed:
		return ErrBusClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run delivers events until ctx is done or the bus is closed
func (b *Bus) Run(ctx context.Context) error {
	for {
		select {
		case e := <-b.queue:
			b.Dispatch(e)
		case <-b.closed:
			return ErrBusClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Pump delivers every queued event without blocking and returns how many were delivered.
// Used by render loops that own the UI thread.
func (b *Bus) Pump() int {
	n := 0
	for {
		select {
		case e := <-b.queue:
			b.Dispatch(e)
			n++
		default:
			return n
		}
	}
}

// Dispatch delivers e right away, bypassing the queue.
// It never runs concurrently with Run or Pump deliveries.
func (b *Bus) Dispatch(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	b.deliver.Lock()
	defer b.deliver.Unlock()

	for _, h := range handlers {
		b.safeCall(h, e)
	}
}

// Pending is the number of queued events
func (b *Bus) Pending() int {
	return len(b.queue)
}

func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.closed)
	})
}

func (b *Bus) safeCall(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked",
				slog.String("device", string(e.Device)),
				slog.String("signal", e.Signal.String()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	h(e)
}
