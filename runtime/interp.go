package tbruntime

import "github.com/gosuda/tinybasic/ast"

const numVars = 26

// Interp is the tree-walking interpreter. It owns the program store, the
// 26 single-letter variables, and the GOSUB return stack. Everything is
// single-threaded: statements execute strictly sequentially and INPUT is
// a synchronous call into the provider.
type Interp struct {
	prog    *ProgramStore
	vars    [numVars]int64
	stack   []int
	outputs []Output
	outHook OutputHook
	input   InputProvider
	queue   []string
	current int
}

// Statement execution returns an explicit control signal instead of a
// nonlocal exit, keeping the run loop a plain state machine.
type stepKind int

const (
	stepNext stepKind = iota
	stepJump
	stepHalt
	stepRun
)

type stepResult struct {
	kind   stepKind
	target int
}

// Return stack entries hold the line to resume at after RETURN. A zero
// entry means the GOSUB line had no successor, so RETURN halts normally.
const resumeEnd = 0

func New() *Interp {
	return &Interp{prog: NewProgramStore()}
}

func (in *Interp) Program() *ProgramStore {
	return in.prog
}

func (in *Interp) SetOutputHook(h OutputHook) {
	in.outHook = h
}

func (in *Interp) SetInputProvider(p InputProvider) {
	in.input = p
}

// Var reads a variable. Unset variables read as zero; Tiny BASIC has no
// uninitialized-variable error.
func (in *Interp) Var(name byte) int64 {
	if name < 'A' || name > 'Z' {
		return 0
	}
	return in.vars[name-'A']
}

func (in *Interp) SetVar(name byte, v int64) {
	if name < 'A' || name > 'Z' {
		return
	}
	in.vars[name-'A'] = v
}

// Outputs returns the output accumulated since the last ResetOutputs.
func (in *Interp) Outputs() []Output {
	return append([]Output(nil), in.outputs...)
}

func (in *Interp) ResetOutputs() {
	in.outputs = in.outputs[:0]
}

func (in *Interp) emit(out Output) {
	in.outputs = append(in.outputs, out)
	if in.outHook != nil {
		in.outHook(out)
	}
}

// Run executes the stored program from its lowest line number until END,
// fall-off-the-end, or a runtime error. An empty program is a no-op run.
func (in *Interp) Run() error {
	in.vars = [numVars]int64{}
	in.stack = in.stack[:0]
	first, ok := in.prog.First()
	if !ok {
		return nil
	}
	return in.runFrom(first)
}

func (in *Interp) runFrom(start int) error {
	cur := start
	for {
		stmt, ok := in.prog.Get(cur)
		if !ok {
			in.current = cur
			err := in.runErr(ErrMissingLine, "line %d does not exist", cur)
			in.current = 0
			return err
		}
		in.current = cur
		res, err := in.exec(stmt)
		if err != nil {
			in.current = 0
			return err
		}
		switch res.kind {
		case stepHalt:
			in.current = 0
			return nil
		case stepJump:
			cur = res.target
		case stepRun:
			in.vars = [numVars]int64{}
			in.stack = in.stack[:0]
			first, ok := in.prog.First()
			if !ok {
				in.current = 0
				return nil
			}
			cur = first
		default:
			nxt, ok := in.prog.NextAfter(cur)
			if !ok {
				in.current = 0
				return nil
			}
			cur = nxt
		}
	}
}

// ExecImmediate runs one statement outside the stored program, against
// the live variable and program stores. A direct-mode GOTO or GOSUB
// enters the program at its target.
func (in *Interp) ExecImmediate(stmt ast.Statement) error {
	in.current = 0
	res, err := in.exec(stmt)
	if err != nil {
		return err
	}
	switch res.kind {
	case stepJump:
		return in.runFrom(res.target)
	case stepRun:
		return in.Run()
	default:
		return nil
	}
}

// ClearAll resets the variables, the return stack, and the program store.
func (in *Interp) ClearAll() {
	in.vars = [numVars]int64{}
	in.stack = in.stack[:0]
	in.queue = nil
	in.prog.Clear()
}
