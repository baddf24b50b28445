package monostate

import (
	"fmt"
	"io"
)

func show(w io.Writer, name string, b *Borg, key string) {
	value, _ := b.Get(key)
	fmt.Fprintf(w, "%s.%s = %v\n", name, key, value)
}

func Demo(w io.Writer) error {
	shared := NewState()
	fmt.Fprintln(w, "--- Initial State ---")
	fmt.Fprintf(w, "shared state is initially: %s\n", shared)

	a := New(shared)
	b := New(shared)
	fmt.Fprintf(w, "\nAre 'a' and 'b' the same object? %t\n", a == b)

	a.Set("x", 5)
	fmt.Fprintln(w, "\n--- After `a.x = 5` ---")
	show(w, "a", a, "x")
	show(w, "b", b, "x")
	fmt.Fprintf(w, "shared state is now: %s\n", shared)

	b.Set("y", 99)
	fmt.Fprintln(w, "\n--- After `b.y = 99` ---")
	show(w, "a", a, "y")
	show(w, "b", b, "y")
	fmt.Fprintf(w, "shared state is now: %s\n", shared)

	fmt.Fprintf(w, "\nDo 'a' and 'b' share the same state? %t\n", SameState(a, b))
	return nil
}
