// Package strategy selects an algorithm at run time by passing it as a value.
package strategy

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuenqlve/patterns/errors"
)

// Func is the shape every strategy shares.
type Func func(x, y float64) float64

type Strategy struct {
	Name string
	Fn   Func
}

var (
	Add      = Strategy{Name: "add", Fn: func(x, y float64) float64 { return x + y }}
	Multiply = Strategy{Name: "multiply", Fn: func(x, y float64) float64 { return x * y }}
)

var catalog = map[string]Strategy{
	Add.Name:      Add,
	Multiply.Name: Multiply,
}

// Lookup finds a built-in strategy by name.
func Lookup(name string) (Strategy, error) {
	s, ok := catalog[name]
	if !ok {
		return Strategy{}, errors.NewPatternErrorf(errors.ErrCodeUnknownKind, "Unknown strategy: %s", name)
	}
	return s, nil
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate is the context: it applies s without knowing what s does.
func Calculate(w io.Writer, a, b float64, s Strategy) float64 {
	if w != nil {
		fmt.Fprintf(w, "Calculating %g and %g using strategy: %s\n", a, b, s.Name)
	}
	return s.Fn(a, b)
}

func Demo(w io.Writer) error {
	for _, s := range []Strategy{Add, Multiply} {
		fmt.Fprintf(w, "--- Using the '%s' strategy ---\n", s.Name)
		result := Calculate(w, 2, 3, s)
		fmt.Fprintf(w, "Result: %g\n\n", result)
	}
	return nil
}
