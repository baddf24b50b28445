package observer

import (
	"fmt"
	"io"

	"github.com/xuenqlve/patterns/errors"
)

// DivObserver prints the floor quotient of the subject's state.
type DivObserver struct {
	divisor int
	out     io.Writer
}

// NewDivObserver rejects a zero divisor so that an attached observer can
// always compute.
func NewDivObserver(divisor int, w io.Writer) (*DivObserver, error) {
	if divisor == 0 {
		return nil, errors.Trace(errors.ErrZeroDivisor)
	}
	if w == nil {
		w = io.Discard
	}
	return &DivObserver{divisor: divisor, out: w}, nil
}

func (o *DivObserver) Divisor() int { return o.divisor }

func (o *DivObserver) Apply(v int) int { return floorDiv(v, o.divisor) }

func (o *DivObserver) Update(subject *StateSubject) error {
	v, ok := subject.State()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(o.out, "  -> DivObserver(%d): %d // %d = %d\n", o.divisor, v, o.divisor, o.Apply(v))
	return errors.Trace(err)
}

// ModObserver prints the floor remainder of the subject's state.
type ModObserver struct {
	divisor int
	out     io.Writer
}

func NewModObserver(divisor int, w io.Writer) (*ModObserver, error) {
	if divisor == 0 {
		return nil, errors.Trace(errors.ErrZeroDivisor)
	}
	if w == nil {
		w = io.Discard
	}
	return &ModObserver{divisor: divisor, out: w}, nil
}

func (o *ModObserver) Divisor() int { return o.divisor }

func (o *ModObserver) Apply(v int) int { return floorMod(v, o.divisor) }

func (o *ModObserver) Update(subject *StateSubject) error {
	v, ok := subject.State()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(o.out, "  -> ModObserver(%d): %d %% %d = %d\n", o.divisor, v, o.divisor, o.Apply(v))
	return errors.Trace(err)
}
