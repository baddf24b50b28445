package decorator

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) error {
	fmt.Fprintln(w, LoudGreet("World"))

	traced := Wrap(LoudGreet,
		func(name string) { fmt.Fprintf(w, "calling greet(%q)\n", name) },
		func(_ string, result string) { fmt.Fprintf(w, "greet returned %q\n", result) },
	)
	traced("Gopher")
	return nil
}
