// Package tinybasic implements a Tiny BASIC interpreter: numbered lines,
// single-letter integer variables, and the classic minimal statement set,
// evaluated by walking the syntax tree directly.
package tinybasic

import (
	"fmt"
	"strings"

	"github.com/gosuda/tinybasic/ast"
	"github.com/gosuda/tinybasic/parser"
	tbruntime "github.com/gosuda/tinybasic/runtime"
)

type OutcomeKind int

const (
	// OutcomeNone means the submitted line was blank.
	OutcomeNone OutcomeKind = iota
	// OutcomeStored means a numbered line was inserted or overwritten.
	OutcomeStored
	// OutcomeRemoved means a bare line number deleted a stored line.
	OutcomeRemoved
	// OutcomeExecuted means an unnumbered statement ran immediately.
	OutcomeExecuted
)

// Outcome describes what happened to one submitted line.
type Outcome struct {
	Kind OutcomeKind
	Line int
}

// StoredLine is one (line number, source text) pair of the program
// listing, the serialization unit for external persistence.
type StoredLine struct {
	Number int
	Source string
}

// Session owns one interpreter instance: the program store, the variable
// store, and the I/O hooks. Editing between runs needs no synchronization
// since execution is never concurrent with editing.
type Session struct {
	interp *tbruntime.Interp
}

func NewSession() *Session {
	return &Session{interp: tbruntime.New()}
}

// SubmitLine feeds one line of text to the interpreter. A line beginning
// with a number is stored (or, bare, removed); a line without one is
// parsed and executed immediately against the live stores. A line that
// fails to lex or parse is never stored.
func (s *Session) SubmitLine(text string) (Outcome, error) {
	if parser.IsBlank(text) {
		return Outcome{Kind: OutcomeNone}, nil
	}
	ln, err := parser.ParseLine(text)
	if err != nil {
		return Outcome{}, err
	}
	if ln.HasNumber {
		if ln.Stmt == nil {
			s.interp.Program().Remove(ln.Number)
			return Outcome{Kind: OutcomeRemoved, Line: ln.Number}, nil
		}
		s.interp.Program().Set(ln.Number, ln.Stmt, ln.Source)
		return Outcome{Kind: OutcomeStored, Line: ln.Number}, nil
	}
	if err := s.interp.ExecImmediate(ln.Stmt); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: OutcomeExecuted}, nil
}

// Run executes the stored program from its lowest line number until it
// halts or a runtime error occurs.
func (s *Session) Run() error {
	return s.interp.Run()
}

// Load submits every line of a program listing, typically a .bas file.
// The first malformed line aborts the load with its file line index.
func (s *Session) Load(src string) error {
	for i, line := range strings.Split(src, "\n") {
		if parser.IsBlank(line) {
			continue
		}
		if _, err := s.SubmitLine(line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// Listing returns the stored program in ascending line order.
func (s *Session) Listing() []StoredLine {
	var lines []StoredLine
	s.interp.Program().Each(func(num int, _ ast.Statement, src string) bool {
		lines = append(lines, StoredLine{Number: num, Source: src})
		return true
	})
	return lines
}

// SetOutputHook registers an observer for each output chunk as PRINT
// produces it.
func (s *Session) SetOutputHook(h tbruntime.OutputHook) {
	s.interp.SetOutputHook(h)
}

// SetInputProvider registers the pull-based source INPUT reads from.
func (s *Session) SetInputProvider(p tbruntime.InputProvider) {
	s.interp.SetInputProvider(p)
}

// EnqueueInput queues scripted INPUT values consumed before the provider.
func (s *Session) EnqueueInput(values ...string) {
	s.interp.EnqueueInput(values...)
}

// Outputs returns output accumulated since the last ResetOutputs.
func (s *Session) Outputs() []tbruntime.Output {
	return s.interp.Outputs()
}

func (s *Session) ResetOutputs() {
	s.interp.ResetOutputs()
}

// Var reads a variable, for post-run inspection.
func (s *Session) Var(name byte) int64 {
	return s.interp.Var(name)
}

// ProgramLen reports how many lines are stored.
func (s *Session) ProgramLen() int {
	return s.interp.Program().Len()
}
