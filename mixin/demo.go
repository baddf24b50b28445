package mixin

import (
	"fmt"
	"io"
	"strings"
)

func Demo(w io.Writer) error {
	fmt.Fprintln(w, "Creating a User instance...")
	u := NewUser("Jon")
	fmt.Fprintln(w, strings.Repeat("-", 20))

	fmt.Fprintln(w, "Calling the greet method...")
	fmt.Fprintf(w, "Greet method returned: %q\n\n", u.Greet())

	p := NewProduct("Super Widget", 9.99)
	fmt.Fprintf(w, "Object representation: %s\n", p)

	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		out, err := Marshal(p, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s representation: %s\n", strings.ToUpper(format), strings.TrimSpace(out))
	}
	p.Log("Product instance created successfully.")
	return nil
}
