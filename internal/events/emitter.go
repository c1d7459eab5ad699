// Package events provides a typed in-process event bus with queued,
// non-reentrant delivery.
package events

import (
	"log/slog"
	"sync"
)

// Event is one published occurrence.
type Event struct {
	Type    string
	Payload any
}

// Handler consumes one event.
type Handler func(Event)

type registration struct {
	id      int
	handler Handler
	once    bool
}

// Emitter fans events out to handlers registered per type. Events
// emitted from inside a handler are queued and delivered after the
// current event finishes, so handlers never run reentrantly.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]registration
	queue    []Event
	emitting bool
	nextID   int
	logger   *slog.Logger
}

// NewEmitter returns an empty Emitter.
func NewEmitter(logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		handlers: make(map[string][]registration),
		logger:   logger,
	}
}

// On registers a handler for an event type and returns a token for Off.
func (e *Emitter) On(eventType string, h Handler) int {
	return e.register(eventType, h, false)
}

// Once registers a handler that is removed after its first delivery.
func (e *Emitter) Once(eventType string, h Handler) int {
	return e.register(eventType, h, true)
}

func (e *Emitter) register(eventType string, h Handler, once bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	e.handlers[eventType] = append(e.handlers[eventType], registration{id: id, handler: h, once: once})
	return id
}

// Off removes a handler by its registration token.
func (e *Emitter) Off(eventType string, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	regs := e.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			e.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Clear removes every handler for a type, or every handler entirely
// when eventType is empty.
func (e *Emitter) Clear(eventType string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if eventType == "" {
		e.handlers = make(map[string][]registration)
		return
	}
	delete(e.handlers, eventType)
}

// HandlerCount returns the number of handlers for a type.
func (e *Emitter) HandlerCount(eventType string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[eventType])
}

// Emit queues an event and drains the queue unless a drain is already
// running on the stack.
func (e *Emitter) Emit(eventType string, payload any) {
	e.mu.Lock()
	e.queue = append(e.queue, Event{Type: eventType, Payload: payload})
	if e.emitting {
		e.mu.Unlock()
		return
	}
	e.emitting = true
	e.mu.Unlock()

	e.drain()
}

func (e *Emitter) drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.emitting = false
			e.mu.Unlock()
			return
		}
		event := e.queue[0]
		e.queue = e.queue[1:]

		regs := e.handlers[event.Type]
		snapshot := make([]registration, len(regs))
		copy(snapshot, regs)

		kept := regs[:0]
		for _, reg := range regs {
			if !reg.once {
				kept = append(kept, reg)
			}
		}
		e.handlers[event.Type] = kept
		e.mu.Unlock()

		for _, reg := range snapshot {
			e.deliver(reg.handler, event)
		}
	}
}

// deliver runs one handler, containing panics so a faulty handler
// cannot stop delivery to the rest.
func (e *Emitter) deliver(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("event handler panicked", "type", event.Type, "panic", r)
		}
	}()
	h(event)
}
