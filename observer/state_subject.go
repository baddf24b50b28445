package observer

import (
	"fmt"
	"io"
	"sync"

	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

// StateObserver is notified with the subject itself and reads what it needs.
type StateObserver interface {
	Update(subject *StateSubject) error
}

// StateSubject is the pull-model publisher. Assigning state notifies.
type StateSubject struct {
	mu        sync.RWMutex
	state     int
	hasState  bool
	observers []StateObserver
	out       io.Writer
}

func NewStateSubject(w io.Writer) *StateSubject {
	if w == nil {
		w = io.Discard
	}
	return &StateSubject{out: w}
}

func (s *StateSubject) Attach(o StateObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	log.Debugf("observer attached. name=[%s]", NameOf(o))
	fmt.Fprintf(s.out, "Subject: Attached an observer: %s\n", NameOf(o))
}

// Detach removes the first attachment of o. Detaching an observer that is
// not attached fails and leaves the list untouched.
func (s *StateSubject) Detach(o StateObserver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, attached := range s.observers {
		if same(attached, o) {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			fmt.Fprintf(s.out, "Subject: Detached an observer: %s\n", NameOf(o))
			return nil
		}
	}
	return errors.Annotatef(errors.ErrObserverNotFound, "detach %s", NameOf(o))
}

// Notify passes the subject to every attached observer in order.
func (s *StateSubject) Notify() error {
	s.mu.RLock()
	observers := append([]StateObserver(nil), s.observers...)
	s.mu.RUnlock()

	fmt.Fprintln(s.out, "Subject: Notifying observers...")
	for _, o := range observers {
		if err := o.Update(s); err != nil {
			return errors.Annotatef(err, "notify %s", NameOf(o))
		}
	}
	return nil
}

// SetState stores v and notifies before returning, so every observer has
// seen v by the time the call completes.
func (s *StateSubject) SetState(v int) error {
	s.mu.Lock()
	s.state = v
	s.hasState = true
	s.mu.Unlock()

	log.Debugf("state changed. value=[%d]", v)
	fmt.Fprintf(s.out, "Subject: State has changed to: %d\n", v)
	return s.Notify()
}

// State returns the current state; ok is false until the first SetState.
func (s *StateSubject) State() (v int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.hasState
}

func (s *StateSubject) Observers() []StateObserver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StateObserver(nil), s.observers...)
}
