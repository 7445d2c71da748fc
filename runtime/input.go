package tbruntime

import (
	"strconv"
	"strings"
)

// InputRequest identifies one pending INPUT read: the target variable and
// the line requesting it (0 in immediate mode).
type InputRequest struct {
	Var  byte
	Line int
}

// InputProvider supplies the raw text for one INPUT read. The interpreter
// parses it; a non-numeric value is an InvalidInput runtime error, and
// re-prompting is the front-end's discretion, not the core's.
type InputProvider func(req InputRequest) (string, error)

// OutputHook observes each output chunk as it is produced.
type OutputHook func(Output)

// Output is one chunk of PRINT output. NewLine marks the single trailing
// line break emitted after a whole PRINT statement.
type Output struct {
	Text    string
	NewLine bool
}

// EnqueueInput appends scripted input values consumed by INPUT before the
// provider is consulted. Used by tests and non-interactive runs.
func (in *Interp) EnqueueInput(values ...string) {
	in.queue = append(in.queue, values...)
}

func (in *Interp) readInput(varName byte) (int64, error) {
	raw, ok := in.consumeQueuedInput()
	if !ok {
		if in.input == nil {
			return 0, in.runErr(ErrInvalidInput, "no input available for %c", varName)
		}
		v, err := in.input(InputRequest{Var: varName, Line: in.current})
		if err != nil {
			return 0, in.runErr(ErrInvalidInput, "%c: %v", varName, err)
		}
		raw = v
	}
	n, ok := parseIntInput(raw)
	if !ok {
		return 0, in.runErr(ErrInvalidInput, "%c: %q is not a number", varName, raw)
	}
	return n, nil
}

func (in *Interp) consumeQueuedInput() (string, bool) {
	if len(in.queue) == 0 {
		return "", false
	}
	v := in.queue[0]
	in.queue = in.queue[1:]
	return v, true
}

func parseIntInput(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
