package singleton

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) error {
	fmt.Fprintln(w, "--- First attempt to get the ConfigManager instance ---")
	c1, err := Instance()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n--- Second attempt to get the ConfigManager instance ---")
	c2, err := Instance()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Initializations so far: %d\n", Initializations())

	fmt.Fprintf(w, "\nAre c1 and c2 the same object? %t\n", c1 == c2)
	fmt.Fprintf(w, "ID of c1: %s\n", c1.ID())
	fmt.Fprintf(w, "ID of c2: %s\n", c2.ID())

	fmt.Fprintln(w, "\n--- Modifying state ---")
	fmt.Fprintf(w, "Original API key from c1: %s\n", c1.APIKey())
	c2.SetAPIKey("new_production_api_key")
	fmt.Fprintln(w, "Changed api_key using c2.")
	fmt.Fprintf(w, "New API key from c1: %s\n", c1.APIKey())
	return nil
}
