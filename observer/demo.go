package observer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuenqlve/patterns/errors"
)

const separatorWidth = 20

// DemoPush registers observers on a push subject and sends two messages.
func DemoPush(w io.Writer) error {
	subject := NewSubject[string](w)
	subject.Register(NewPrintObserver(w))
	if err := subject.Notify("Hello, World!"); err != nil {
		return err
	}

	another := NewFuncObserver("AnotherObserver", func(data string) error {
		_, err := fmt.Fprintf(w, "AnotherObserver: Got this data: '%s'\n", data)
		return err
	})
	subject.Register(another)
	return subject.Notify("A second notification for everyone!")
}

// DemoPull attaches divisor observers to a state subject, changes state,
// detaches one observer and changes state again.
func DemoPull(w io.Writer) error {
	separator := strings.Repeat("-", separatorWidth)
	subject := NewStateSubject(w)

	div4, err := NewDivObserver(4, w)
	if err != nil {
		return err
	}
	div3, err := NewDivObserver(3, w)
	if err != nil {
		return err
	}
	mod3, err := NewModObserver(3, w)
	if err != nil {
		return err
	}

	subject.Attach(div4)
	subject.Attach(div3)
	subject.Attach(mod3)
	fmt.Fprintln(w, separator)

	if err = subject.SetState(14); err != nil {
		return err
	}
	fmt.Fprintln(w, separator)

	if err = subject.Detach(div3); err != nil {
		return err
	}
	fmt.Fprintln(w, separator)

	if err = subject.SetState(25); err != nil {
		return err
	}
	fmt.Fprintln(w, separator)

	if _, err = NewDivObserver(0, w); errors.Is(err, errors.ErrZeroDivisor) {
		fmt.Fprintf(w, "Caught expected error: %v\n", errors.Cause(err))
	}
	if err = subject.Detach(div3); errors.Is(err, errors.ErrObserverNotFound) {
		fmt.Fprintf(w, "Caught expected error: %v\n", err)
	}
	return nil
}

func Demo(w io.Writer) error {
	if err := DemoPush(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return DemoPull(w)
}
