package sha3x

import "fmt"

// ParamError reports an invalid security parameter or other structural
// misuse of the XOF family (spec §7, kind 1). It is never used to signal a
// verification failure.
type ParamError struct {
	Op  string
	Msg string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("sha3x: %s: %s", e.Op, e.Msg)
}

func newParamError(op, format string, args ...any) *ParamError {
	return &ParamError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
