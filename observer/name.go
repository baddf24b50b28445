package observer

import "reflect"

// Namer lets an observer choose the name subjects print for it.
type Namer interface {
	Name() string
}

// NameOf returns the display name of o: its Name() if it has one, otherwise
// the name of its concrete type with pointers stripped.
func NameOf(o any) string {
	if n, ok := o.(Namer); ok {
		return n.Name()
	}
	t := reflect.TypeOf(o)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// same compares by identity. Pointer observers match only themselves; value
// observers match equal values, deep-compared when == would panic.
func same(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
