// Package factory hides renderer construction behind a single function that
// picks the concrete type from a kind string.
package factory

import (
	"io"
	"sort"
	"sync"

	"github.com/xuenqlve/patterns/errors"
)

type Constructor func(w io.Writer) Renderer

var (
	mu      sync.RWMutex
	catalog = map[string]Constructor{
		"OpenGL":  NewOpenGL,
		"DirectX": NewDirectX,
	}
)

// Register adds or replaces a catalog entry.
func Register(kind string, ctor Constructor) error {
	if kind == "" || ctor == nil {
		return errors.Errorf("invalid renderer registration kind=[%s]", kind)
	}
	mu.Lock()
	defer mu.Unlock()
	catalog[kind] = ctor
	return nil
}

// New builds the renderer registered for kind.
func New(kind string, w io.Writer) (Renderer, error) {
	mu.RLock()
	ctor, ok := catalog[kind]
	mu.RUnlock()
	if !ok {
		return nil, errors.NewPatternErrorf(errors.ErrCodeUnknownKind, "Unknown renderer kind: %s", kind)
	}
	if w == nil {
		w = io.Discard
	}
	return ctor(w), nil
}

func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(catalog))
	for kind := range catalog {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
