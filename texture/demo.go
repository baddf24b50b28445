package texture

import (
	"fmt"
	"io"
)

func levelLoad(r *Registry) error {
	fmt.Fprintln(r.out, "--- Inside levelLoad() ---")
	if _, err := r.Get("new.tga"); err != nil {
		return err
	}
	r.Print()
	fmt.Fprint(r.out, "--- Exiting levelLoad() ---\n\n")
	return nil
}

func Demo(w io.Writer) error {
	r := NewRegistry(w)
	fmt.Fprintln(w, "Starting texture requests...")

	for _, name := range []string{"diffuse.tga", "specular.tga", "diffuse.tga"} {
		if _, err := r.Get(name); err != nil {
			return err
		}
		r.Print()
	}

	if err := levelLoad(r); err != nil {
		return err
	}

	fmt.Fprintln(w, "Final state of the texture cache:")
	r.Print()
	return nil
}
