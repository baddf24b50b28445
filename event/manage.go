// Package event is a topic-keyed push subject. Observers register for one
// event type and are called synchronously, in registration order, whenever an
// event of that type is uploaded.
package event

import (
	"reflect"
	"strconv"
	"sync"

	evbus "github.com/asaskevich/EventBus"

	"github.com/xuenqlve/patterns/errors"
)

// Manager must not be registered on or unregistered from inside an
// ObserverFunc: the bus holds its lock while dispatching.
type Manager struct {
	bus evbus.Bus

	mu sync.Mutex
	// code pointers per type, in registration order; mirrors the bus so
	// Unregister can tell a miss from a removal
	handlers map[Type][]uintptr
}

func NewManager() *Manager {
	return &Manager{
		bus:      evbus.New(),
		handlers: make(map[Type][]uintptr),
	}
}

func topic(et Type) string {
	return "event:" + strconv.Itoa(int(et))
}

func (m *Manager) Register(et Type, observer ObserverFunc) error {
	if observer == nil {
		return errors.Errorf("nil observer for event %s", et)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.bus.Subscribe(topic(et), observer); err != nil {
		return errors.Trace(err)
	}
	m.handlers[et] = append(m.handlers[et], reflect.ValueOf(observer).Pointer())
	return nil
}

// Unregister removes the first registration of observer for et. Function
// values are compared by code pointer, so two closures built from the same
// literal are indistinguishable.
func (m *Manager) Unregister(et Type, observer ObserverFunc) error {
	if observer == nil {
		return errors.Annotatef(errors.ErrObserverNotFound, "nil observer for event %s", et)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ptr := reflect.ValueOf(observer).Pointer()
	registered := m.handlers[et]
	for i, p := range registered {
		if p != ptr {
			continue
		}
		if err := m.bus.Unsubscribe(topic(et), observer); err != nil {
			return errors.Annotatef(errors.ErrObserverNotFound, "event %s: %v", et, err)
		}
		m.handlers[et] = append(registered[:i:i], registered[i+1:]...)
		return nil
	}
	return errors.Annotatef(errors.ErrObserverNotFound, "event %s", et)
}

func (m *Manager) HasObservers(et Type) bool {
	return m.bus.HasCallback(topic(et))
}

func (m *Manager) Upload(event Event) {
	m.bus.Publish(topic(event.Type), event)
}

const errorKey = "error"

// ErrorEvent reports a failure tied to key, for example the move that could
// not be executed.
func ErrorEvent(key string, err error) Event {
	return Event{
		Type:  ErrorRaised,
		Key:   key,
		Value: map[string]any{errorKey: err},
	}
}

// Err returns the error carried by an ErrorEvent, nil for any other event.
func Err(e Event) error {
	err, _ := e.Value[errorKey].(error)
	return err
}
