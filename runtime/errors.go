package tbruntime

import "fmt"

type ErrorCode int

const (
	ErrMissingLine ErrorCode = iota
	ErrDivisionByZero
	ErrReturnWithoutGosub
	ErrInvalidInput
	ErrUndefinedOperator
)

// RuntimeError halts a run immediately. Line is the line being executed
// when the error occurred, or 0 in immediate mode. Variable state as of
// the failing statement is left intact for inspection.
type RuntimeError struct {
	Code   ErrorCode
	Line   int
	Detail string
}

func (e *RuntimeError) Error() string {
	msg := ""
	switch e.Code {
	case ErrMissingLine:
		msg = "no such line"
	case ErrDivisionByZero:
		msg = "division by zero"
	case ErrReturnWithoutGosub:
		msg = "RETURN without GOSUB"
	case ErrInvalidInput:
		msg = "invalid input"
	case ErrUndefinedOperator:
		msg = "undefined operator"
	default:
		msg = "runtime error"
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (in *Interp) runErr(code ErrorCode, format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: code, Line: in.current, Detail: fmt.Sprintf(format, args...)}
}
