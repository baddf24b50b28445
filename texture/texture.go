// Package texture shows lazy initialization: a Texture is only loaded the first
// time its name is requested, and every later request reuses that instance.
package texture

import (
	"fmt"
	"io"

	"github.com/xuenqlve/patterns/cache"
	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

type Texture struct {
	Name string
}

func load(name string, w io.Writer) *Texture {
	fmt.Fprintf(w, "    -> Loading texture data for: %s\n", name)
	return &Texture{Name: name}
}

type Registry struct {
	textures *cache.Lazy[string, *Texture]
	out      io.Writer
}

func NewRegistry(w io.Writer) *Registry {
	if w == nil {
		w = io.Discard
	}
	r := &Registry{out: w}
	r.textures = cache.NewLazy(func(name string) (*Texture, error) {
		if name == "" {
			return nil, errors.New("empty texture name")
		}
		fmt.Fprintf(r.out, "    -> '%s' not in cache. Creating new instance.\n", name)
		return load(name, r.out), nil
	})
	return r
}

// Get returns the texture called name, loading it on first request.
func (r *Registry) Get(name string) (*Texture, error) {
	fmt.Fprintf(r.out, "Requesting texture: '%s'\n", name)
	t, created, err := r.textures.GetOrLoad(name)
	if err != nil {
		return nil, err
	}
	if created {
		log.Debugf("texture loaded. name=[%s]", name)
	} else {
		fmt.Fprintf(r.out, "    -> '%s' found in cache. Re-using existing instance.\n", name)
	}
	return t, nil
}

func (r *Registry) Names() []string {
	return r.textures.Keys()
}

func (r *Registry) Len() int {
	return r.textures.Len()
}

func (r *Registry) Print() {
	fmt.Fprintln(r.out, "\n--- Texture Cache State ---")
	fmt.Fprintf(r.out, "Number of instances created = %d\n", r.textures.Len())
	for _, name := range r.textures.Keys() {
		fmt.Fprintf(r.out, "- %s\n", name)
	}
	fmt.Fprint(r.out, "---------------------------\n\n")
}
