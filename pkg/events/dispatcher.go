package events

import (
	"strings"
)

// Source is a value-bearing selection control. The widget never owns the
// control; it only reads the current value when an event fires.
type Source interface {
	Value() string
}

// SourceFunc adapts a function into a Source.
type SourceFunc func() string

// Value returns the function's result.
func (fn SourceFunc) Value() string { return fn() }

// Handler receives the driving control's value at the time the event fired.
type Handler func(value string)

// Dispatcher delivers named change events to subscribed handlers. Delivery is
// synchronous and in subscription order on the calling goroutine, one event at
// a time, which matches how a browser serializes DOM change events. There is
// no unsubscribe: subscriptions persist for the dispatcher's lifetime.
type Dispatcher struct {
	handlers map[string][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

// On subscribes a handler to the named event. Empty names and nil handlers
// are ignored.
func (d *Dispatcher) On(name string, handler Handler) {
	if d == nil || handler == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	d.handlers[trimmed] = append(d.handlers[trimmed], handler)
}

// Fire delivers the event to every handler subscribed to name, in the order
// they subscribed. Handlers run before Fire returns.
func (d *Dispatcher) Fire(name, value string) {
	if d == nil {
		return
	}
	for _, handler := range d.handlers[strings.TrimSpace(name)] {
		handler(value)
	}
}

// Subscribed reports whether at least one handler listens for name.
func (d *Dispatcher) Subscribed(name string) bool {
	if d == nil {
		return false
	}
	return len(d.handlers[strings.TrimSpace(name)]) > 0
}
