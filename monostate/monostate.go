// Package monostate gives many handles one shared state. Instead of aliasing
// per-instance storage, every Borg holds a pointer to the same explicitly
// owned State.
package monostate

import (
	"fmt"
	"sort"
	"strings"

	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// State is the shared attribute store.
type State struct {
	m *csmap.CsMap[string, any]
}

func NewState() *State {
	return &State{
		m: csmap.Create[string, any](
			csmap.WithSize[string, any](8),
		),
	}
}

func (s *State) Set(key string, value any) {
	s.m.Store(key, value)
}

func (s *State) Get(key string) (any, bool) {
	return s.m.Load(key)
}

func (s *State) Delete(key string) {
	s.m.Delete(key)
}

func (s *State) Len() int {
	return s.m.Count()
}

// Keys returns the attribute names sorted.
func (s *State) Keys() []string {
	keys := make([]string, 0, s.m.Count())
	s.m.Range(func(key string, _ any) (stop bool) {
		keys = append(keys, key)
		return false
	})
	sort.Strings(keys)
	return keys
}

// String renders the state as {'x': 5, 'y': 99} with keys sorted.
func (s *State) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		value, _ := s.Get(key)
		fmt.Fprintf(&b, "'%s': %v", key, value)
	}
	b.WriteByte('}')
	return b.String()
}

// Borg is one handle onto a shared State. Handles are distinct values; their
// attributes are not.
type Borg struct {
	state *State
}

func New(shared *State) *Borg {
	if shared == nil {
		shared = NewState()
	}
	return &Borg{state: shared}
}

func (b *Borg) Set(key string, value any) { b.state.Set(key, value) }

func (b *Borg) Get(key string) (any, bool) { return b.state.Get(key) }

func (b *Borg) State() *State { return b.state }

// SameState reports whether two handles share storage.
func SameState(a, b *Borg) bool {
	return a.state == b.state
}
