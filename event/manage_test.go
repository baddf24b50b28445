package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/patterns/errors"
)

func TestManagerDispatchOrder(t *testing.T) {
	m := NewManager()
	var got []string
	require.NoError(t, m.Register(MoveExecuted, func(e Event) { got = append(got, "first:"+e.Key) }))
	require.NoError(t, m.Register(MoveExecuted, func(e Event) { got = append(got, "second:"+e.Key) }))
	require.NoError(t, m.Register(ErrorRaised, func(e Event) { got = append(got, "error:"+e.Key) }))

	m.Upload(Event{Type: MoveExecuted, Key: "UP"})
	assert.Equal(t, []string{"first:UP", "second:UP"}, got)

	m.Upload(Event{Type: Type(99), Key: "ignored"})
	assert.Len(t, got, 2)
}

func TestManagerUnregister(t *testing.T) {
	m := NewManager()
	calls := 0
	observer := ObserverFunc(func(Event) { calls++ })

	require.NoError(t, m.Register(ErrorRaised, observer))
	assert.True(t, m.HasObservers(ErrorRaised))
	require.NoError(t, m.Unregister(ErrorRaised, observer))
	assert.False(t, m.HasObservers(ErrorRaised))

	m.Upload(Event{Type: ErrorRaised})
	assert.Equal(t, 0, calls)

	err := m.Unregister(ErrorRaised, observer)
	assert.True(t, errors.Is(err, errors.ErrObserverNotFound))
}

func TestManagerUnregisterUnknownWithOthersSubscribed(t *testing.T) {
	m := NewManager()
	calls := 0
	registered := ObserverFunc(func(Event) { calls++ })
	stranger := ObserverFunc(func(Event) {})

	require.NoError(t, m.Register(MoveExecuted, registered))
	err := m.Unregister(MoveExecuted, stranger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrObserverNotFound))

	m.Upload(Event{Type: MoveExecuted})
	assert.Equal(t, 1, calls)
	assert.True(t, m.HasObservers(MoveExecuted))
}

func TestManagerRejectsNil(t *testing.T) {
	assert.Error(t, NewManager().Register(MoveExecuted, nil))
	assert.True(t, errors.Is(NewManager().Unregister(MoveExecuted, nil), errors.ErrObserverNotFound))
}

func TestErrorEvent(t *testing.T) {
	cause := errors.Annotate(errors.ErrUnknownKind, "move LEFT")
	e := ErrorEvent("LEFT", cause)
	assert.Equal(t, ErrorRaised, e.Type)
	assert.Equal(t, "LEFT", e.Key)
	assert.True(t, errors.Is(Err(e), errors.ErrUnknownKind))
	assert.NoError(t, Err(Event{Type: MoveExecuted}))
	assert.Equal(t, "error_raised", ErrorRaised.String())
	assert.Equal(t, "unknown", Type(99).String())
}
