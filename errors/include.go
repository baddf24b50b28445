package errors

import (
	stderrors "errors"

	perrors "github.com/pingcap/errors"
)

var (
	Trace     = perrors.Trace
	Cause     = perrors.Cause
	New       = perrors.New
	Errorf    = perrors.Errorf
	Annotate  = perrors.Annotate
	Annotatef = perrors.Annotatef
	Equal     = perrors.ErrorEqual
	As        = stderrors.As
)

// Is follows both Unwrap chains and pingcap Cause chains.
func Is(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	if stderrors.Is(err, target) {
		return true
	}
	return stderrors.Is(Cause(err), target)
}
