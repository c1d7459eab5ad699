package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnAndEmit(t *testing.T) {
	e := NewEmitter(nil)

	var got []any
	e.On("tick", func(ev Event) { got = append(got, ev.Payload) })

	e.Emit("tick", 1)
	e.Emit("tick", 2)
	e.Emit("other", 99)

	assert.Equal(t, []any{1, 2}, got)
}

func TestOff(t *testing.T) {
	e := NewEmitter(nil)

	count := 0
	id := e.On("tick", func(Event) { count++ })
	e.Emit("tick", nil)

	e.Off("tick", id)
	e.Emit("tick", nil)

	assert.Equal(t, 1, count)
	assert.Zero(t, e.HandlerCount("tick"))
}

func TestOnce(t *testing.T) {
	e := NewEmitter(nil)

	count := 0
	e.Once("tick", func(Event) { count++ })

	e.Emit("tick", nil)
	e.Emit("tick", nil)

	assert.Equal(t, 1, count)
}

func TestClear(t *testing.T) {
	e := NewEmitter(nil)
	e.On("a", func(Event) {})
	e.On("a", func(Event) {})
	e.On("b", func(Event) {})

	e.Clear("a")
	assert.Zero(t, e.HandlerCount("a"))
	assert.Equal(t, 1, e.HandlerCount("b"))

	e.Clear("")
	assert.Zero(t, e.HandlerCount("b"))
}

func TestEmitFromHandlerQueued(t *testing.T) {
	e := NewEmitter(nil)

	var order []string
	e.On("first", func(Event) {
		order = append(order, "first-start")
		e.Emit("second", nil)
		order = append(order, "first-end")
	})
	e.On("second", func(Event) { order = append(order, "second") })

	e.Emit("first", nil)

	// the nested emit runs after the outer handler returns
	assert.Equal(t, []string{"first-start", "first-end", "second"}, order)
}

func TestHandlerPanicContained(t *testing.T) {
	e := NewEmitter(nil)

	e.On("tick", func(Event) { panic("boom") })
	count := 0
	e.On("tick", func(Event) { count++ })

	e.Emit("tick", nil)
	assert.Equal(t, 1, count)
}
