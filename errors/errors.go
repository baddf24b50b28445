package errors

import perrors "github.com/pingcap/errors"

const (
	ErrCodeInvalidArgument uint16 = 1000
	ErrCodeZeroDivisor     uint16 = 1001
	ErrCodeNotFound        uint16 = 2000
	ErrCodeCapability      uint16 = 3000
	ErrCodeUnknownKind     uint16 = 4000
)

// PatternError carries a numeric code so callers can match a failure class
// regardless of the message it was created with.
type PatternError struct {
	Code uint16
	error
}

func NewPatternError(code uint16, err error) error {
	return &PatternError{
		Code:  code,
		error: err,
	}
}

func NewPatternErrorMessage(code uint16, message string) error {
	return &PatternError{
		Code:  code,
		error: perrors.New(message),
	}
}

func NewPatternErrorf(code uint16, format string, args ...any) error {
	return &PatternError{
		Code:  code,
		error: perrors.Errorf(format, args...),
	}
}

func (e *PatternError) Unwrap() error {
	return e.error
}

// Is reports a match for any PatternError with the same code. Every sentinel
// below owns its code.
func (e *PatternError) Is(target error) bool {
	t, ok := target.(*PatternError)
	return ok && t.Code == e.Code
}

// Code returns the code of the first PatternError in err's chain, 0 if none.
func Code(err error) uint16 {
	var pe *PatternError
	if As(err, &pe) {
		return pe.Code
	}
	if As(Cause(err), &pe) {
		return pe.Code
	}
	return 0
}

var (
	ErrZeroDivisor      = NewPatternErrorMessage(ErrCodeZeroDivisor, "Divisor cannot be zero")
	ErrObserverNotFound = NewPatternErrorMessage(ErrCodeNotFound, "observer not attached")
	ErrCapability       = NewPatternErrorMessage(ErrCodeCapability, "capability not implemented")
	ErrUnknownKind      = NewPatternErrorMessage(ErrCodeUnknownKind, "unknown kind")
)
