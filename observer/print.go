package observer

import (
	"fmt"
	"io"
)

// PrintObserver echoes every pushed message.
type PrintObserver struct {
	out io.Writer
}

func NewPrintObserver(w io.Writer) *PrintObserver {
	if w == nil {
		w = io.Discard
	}
	return &PrintObserver{out: w}
}

func (o *PrintObserver) Update(data string) error {
	_, err := fmt.Fprintf(o.out, "PrintObserver: Received data: \"%s\"\n", data)
	return err
}

// FuncObserver adapts a function to Observer. Use the returned pointer for
// Unregister; identity is the pointer.
type FuncObserver[T any] struct {
	name string
	fn   func(T) error
}

func NewFuncObserver[T any](name string, fn func(T) error) *FuncObserver[T] {
	return &FuncObserver[T]{name: name, fn: fn}
}

func (o *FuncObserver[T]) Name() string { return o.name }

func (o *FuncObserver[T]) Update(data T) error { return o.fn(data) }
