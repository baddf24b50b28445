// Package observer implements the Subject/Observer notification mechanism in
// two flavours. Subject pushes a payload to every observer; StateSubject passes
// itself so observers can pull the state they need.
//
// Both subjects dispatch synchronously on the caller's goroutine, in
// registration order, over a snapshot of the observer list.
package observer

import (
	"fmt"
	"io"
	"sync"

	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

// Observer receives payloads pushed by a Subject.
type Observer[T any] interface {
	Update(data T) error
}

// Subject is the push-model publisher.
type Subject[T any] struct {
	mu        sync.RWMutex
	observers []Observer[T]
	out       io.Writer
}

func NewSubject[T any](w io.Writer) *Subject[T] {
	if w == nil {
		w = io.Discard
	}
	return &Subject[T]{out: w}
}

// Register appends o. Registering the same observer twice delivers every
// notification to it twice.
func (s *Subject[T]) Register(o Observer[T]) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	log.Debugf("observer registered. name=[%s]", NameOf(o))
	fmt.Fprintf(s.out, "Subject: Registered an observer: %s\n", NameOf(o))
}

// Unregister removes the first registration of o.
func (s *Subject[T]) Unregister(o Observer[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, registered := range s.observers {
		if same(registered, o) {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			fmt.Fprintf(s.out, "Subject: Unregistered an observer: %s\n", NameOf(o))
			return nil
		}
	}
	return errors.Annotatef(errors.ErrObserverNotFound, "unregister %s", NameOf(o))
}

// Notify delivers data to every observer in registration order. The first
// failing observer stops delivery and its error is returned.
func (s *Subject[T]) Notify(data T) error {
	observers := s.Observers()
	fmt.Fprintf(s.out, "Subject: Notifying observers with message: \"%v\"\n", data)
	for _, o := range observers {
		if err := o.Update(data); err != nil {
			return errors.Annotatef(err, "notify %s", NameOf(o))
		}
	}
	log.Debugf("notified observers. count=[%d]", len(observers))
	return nil
}

// Observers returns a copy of the registered observers.
func (s *Subject[T]) Observers() []Observer[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Observer[T](nil), s.observers...)
}

func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}
