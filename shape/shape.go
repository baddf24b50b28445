// Package shape models an abstract base class as an interface. Concrete types
// are checked against it at compile time where possible, and New rejects any
// value that lacks part of the capability set at construction time.
package shape

import (
	"math"
	"reflect"
	"strings"

	"github.com/xuenqlve/patterns/errors"
)

// Shape is the capability set every shape must provide.
type Shape interface {
	Area() float64
	Perimeter() float64
}

var (
	_ Shape = Circle{}
	_ Shape = Square{}
)

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

type Square struct {
	Side float64
}

func (s Square) Area() float64 { return s.Side * s.Side }

func (s Square) Perimeter() float64 { return 4 * s.Side }

// Rectangle carries dimensions but does not implement Shape.
type Rectangle struct {
	Width  float64
	Height float64
}

var shapeType = reflect.TypeOf((*Shape)(nil)).Elem()

// New returns v as a Shape, or an ErrCapability error naming every missing
// method when v does not satisfy the contract.
func New(v any) (Shape, error) {
	if s, ok := v.(Shape); ok {
		return s, nil
	}
	name, missing := Missing(v)
	return nil, errors.NewPatternErrorf(errors.ErrCodeCapability,
		"can't instantiate %s: missing methods %s", name, strings.Join(missing, ", "))
}

// Missing reports the type name of v and the Shape methods it does not
// provide with the right signature, sorted by name.
func Missing(v any) (name string, missing []string) {
	t := reflect.TypeOf(v)
	name = "Shape"
	if t != nil {
		base := t
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		if name = base.Name(); name == "" {
			name = t.String()
		}
	}
	for i := 0; i < shapeType.NumMethod(); i++ {
		want := shapeType.Method(i)
		if t == nil {
			missing = append(missing, want.Name)
			continue
		}
		got, ok := t.MethodByName(want.Name)
		if !ok || !sameSignature(got.Type, want.Type) {
			missing = append(missing, want.Name)
		}
	}
	return name, missing
}

// sameSignature compares a concrete method type, which takes the receiver as
// its first input, with an interface method type.
func sameSignature(method, iface reflect.Type) bool {
	if method.NumIn()-1 != iface.NumIn() || method.NumOut() != iface.NumOut() {
		return false
	}
	for i := 0; i < iface.NumIn(); i++ {
		if method.In(i+1) != iface.In(i) {
			return false
		}
	}
	for i := 0; i < iface.NumOut(); i++ {
		if method.Out(i) != iface.Out(i) {
			return false
		}
	}
	return true
}
