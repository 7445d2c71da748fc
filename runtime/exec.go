package tbruntime

import (
	"fmt"
	"strings"

	"github.com/gosuda/tinybasic/ast"
)

func (in *Interp) exec(stmt ast.Statement) (stepResult, error) {
	switch s := stmt.(type) {
	case ast.PrintStmt:
		return in.execPrint(s)
	case ast.InputStmt:
		return in.execInput(s)
	case ast.LetStmt:
		v, err := in.evalExpr(s.Expr)
		if err != nil {
			return stepResult{}, err
		}
		in.SetVar(s.Var, v)
		return stepResult{kind: stepNext}, nil
	case ast.IfStmt:
		ok, err := in.evalComparison(s.Cond)
		if err != nil {
			return stepResult{}, err
		}
		if ok {
			return in.exec(s.Then)
		}
		return stepResult{kind: stepNext}, nil
	case ast.GotoStmt:
		target, err := in.evalJumpTarget(s.Target)
		if err != nil {
			return stepResult{}, err
		}
		return stepResult{kind: stepJump, target: target}, nil
	case ast.GosubStmt:
		target, err := in.evalJumpTarget(s.Target)
		if err != nil {
			return stepResult{}, err
		}
		resume := resumeEnd
		if in.current > 0 {
			if nxt, ok := in.prog.NextAfter(in.current); ok {
				resume = nxt
			}
		}
		in.stack = append(in.stack, resume)
		return stepResult{kind: stepJump, target: target}, nil
	case ast.ReturnStmt:
		if len(in.stack) == 0 {
			return stepResult{}, in.runErr(ErrReturnWithoutGosub, "return stack is empty")
		}
		resume := in.stack[len(in.stack)-1]
		in.stack = in.stack[:len(in.stack)-1]
		if resume == resumeEnd {
			return stepResult{kind: stepHalt}, nil
		}
		return stepResult{kind: stepJump, target: resume}, nil
	case ast.EndStmt:
		return stepResult{kind: stepHalt}, nil
	case ast.RemStmt:
		return stepResult{kind: stepNext}, nil
	case ast.ClearStmt:
		// Nothing remains to execute once the program is gone, so CLEAR
		// also halts a running program.
		in.ClearAll()
		return stepResult{kind: stepHalt}, nil
	case ast.ListStmt:
		in.prog.Each(func(num int, _ ast.Statement, src string) bool {
			in.emit(Output{Text: fmt.Sprintf("%d %s", num, src), NewLine: true})
			return true
		})
		return stepResult{kind: stepNext}, nil
	case ast.RunStmt:
		return stepResult{kind: stepRun}, nil
	default:
		return stepResult{}, in.runErr(ErrUndefinedOperator, "unhandled statement %T", stmt)
	}
}

// execPrint evaluates the print items left to right and emits them as one
// chunk with a single trailing line break for the whole statement.
func (in *Interp) execPrint(s ast.PrintStmt) (stepResult, error) {
	var b strings.Builder
	for _, item := range s.Items {
		if item.IsText {
			b.WriteString(item.Text)
			continue
		}
		v, err := in.evalExpr(item.Expr)
		if err != nil {
			return stepResult{}, err
		}
		fmt.Fprintf(&b, "%d", v)
	}
	in.emit(Output{Text: b.String(), NewLine: true})
	return stepResult{kind: stepNext}, nil
}

// execInput assigns each variable in order. Every assignment commits
// immediately: values stored before a failing read are not rolled back.
func (in *Interp) execInput(s ast.InputStmt) (stepResult, error) {
	for _, name := range s.Vars {
		v, err := in.readInput(name)
		if err != nil {
			return stepResult{}, err
		}
		in.SetVar(name, v)
	}
	return stepResult{kind: stepNext}, nil
}

// evalJumpTarget evaluates a GOTO/GOSUB target expression and checks the
// line exists. The target is an expression, so a bad line number is a
// runtime error, never a parse-time one.
func (in *Interp) evalJumpTarget(target ast.Expr) (int, error) {
	v, err := in.evalExpr(target)
	if err != nil {
		return 0, err
	}
	num := int(v)
	if num <= 0 {
		return 0, in.runErr(ErrMissingLine, "invalid target line %d", v)
	}
	if _, ok := in.prog.Get(num); !ok {
		return 0, in.runErr(ErrMissingLine, "target line %d does not exist", num)
	}
	return num, nil
}
