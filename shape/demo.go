package shape

import (
	"fmt"
	"io"

	"github.com/xuenqlve/patterns/errors"
)

func describe(w io.Writer, title string, s Shape) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  Area: %.2f\n", s.Area())
	fmt.Fprintf(w, "  Perimeter: %.2f\n", s.Perimeter())
}

func Demo(w io.Writer) error {
	c, err := New(Circle{Radius: 5})
	if err != nil {
		return err
	}
	describe(w, "Circle with radius 5:", c)

	s, err := New(Square{Side: 4})
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	describe(w, "Square with side 4:", s)

	if _, err = New(Rectangle{Width: 5, Height: 2}); errors.Is(err, errors.ErrCapability) {
		fmt.Fprintln(w, "\nAttempting to create a Rectangle instance...")
		fmt.Fprintf(w, "  Caught expected error: %v\n", err)
	}
	if _, err = New(nil); errors.Is(err, errors.ErrCapability) {
		fmt.Fprintln(w, "\nAttempting to create a Shape instance...")
		fmt.Fprintf(w, "  Caught expected error: %v\n", err)
	}
	return nil
}
