package tbruntime

import (
	"errors"
	"testing"

	"github.com/gosuda/tinybasic/ast"
)

func runtimeCode(t *testing.T, err error) *RuntimeError {
	t.Helper()
	var runErr *RuntimeError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	return runErr
}

func TestExpressionDeterminism(t *testing.T) {
	in := New()
	in.SetVar('A', 7)
	expr := ast.BinaryExpr{
		Op:    "+",
		Left:  ast.BinaryExpr{Op: "*", Left: ast.VarRef{Name: 'A'}, Right: ast.NumberLit{Value: 3}},
		Right: ast.UnaryExpr{Op: "-", Expr: ast.NumberLit{Value: 4}},
	}
	first, err := in.evalExpr(expr)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	second, err := in.evalExpr(expr)
	if err != nil {
		t.Fatalf("second eval failed: %v", err)
	}
	if first != second || first != 17 {
		t.Fatalf("eval = %d then %d, want 17 both times", first, second)
	}
}

func TestUnsetVariableReadsZero(t *testing.T) {
	in := New()
	v, err := in.evalExpr(ast.VarRef{Name: 'Q'})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if v != 0 {
		t.Fatalf("unset variable = %d, want 0", v)
	}
}

func TestDivisionByZero(t *testing.T) {
	in := New()
	in.Program().Set(10, ast.LetStmt{
		Var:  'A',
		Expr: ast.BinaryExpr{Op: "/", Left: ast.NumberLit{Value: 10}, Right: ast.NumberLit{Value: 0}},
	}, "LET A = 10 / 0")
	err := in.Run()
	runErr := runtimeCode(t, err)
	if runErr.Code != ErrDivisionByZero {
		t.Fatalf("code = %d, want ErrDivisionByZero", runErr.Code)
	}
	if runErr.Line != 10 {
		t.Fatalf("line = %d, want 10", runErr.Line)
	}
	if len(in.Outputs()) != 0 {
		t.Fatalf("outputs = %v, want none", in.Outputs())
	}
}

func TestGosubReturnResumesAtSuccessor(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(10, ast.GosubStmt{Target: ast.NumberLit{Value: 40}}, "GOSUB 40")
	ps.Set(20, ast.LetStmt{Var: 'B', Expr: ast.NumberLit{Value: 2}}, "LET B = 2")
	ps.Set(30, ast.EndStmt{}, "END")
	ps.Set(40, ast.LetStmt{Var: 'C', Expr: ast.NumberLit{Value: 3}}, "LET C = 3")
	ps.Set(50, ast.ReturnStmt{}, "RETURN")
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if in.Var('B') != 2 || in.Var('C') != 3 {
		t.Fatalf("B=%d C=%d, want B=2 C=3", in.Var('B'), in.Var('C'))
	}
}

func TestGosubAtLastLineReturnHalts(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(10, ast.GotoStmt{Target: ast.NumberLit{Value: 30}}, "GOTO 30")
	ps.Set(20, ast.ReturnStmt{}, "RETURN")
	ps.Set(30, ast.GosubStmt{Target: ast.NumberLit{Value: 20}}, "GOSUB 20")
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestReturnWithoutGosub(t *testing.T) {
	in := New()
	in.Program().Set(10, ast.ReturnStmt{}, "RETURN")
	err := in.Run()
	runErr := runtimeCode(t, err)
	if runErr.Code != ErrReturnWithoutGosub {
		t.Fatalf("code = %d, want ErrReturnWithoutGosub", runErr.Code)
	}
}

func TestImmediateReturnWithoutGosub(t *testing.T) {
	in := New()
	err := in.ExecImmediate(ast.ReturnStmt{})
	runErr := runtimeCode(t, err)
	if runErr.Code != ErrReturnWithoutGosub {
		t.Fatalf("code = %d, want ErrReturnWithoutGosub", runErr.Code)
	}
}

func TestGotoMissingLine(t *testing.T) {
	in := New()
	in.Program().Set(10, ast.GotoStmt{Target: ast.NumberLit{Value: 99}}, "GOTO 99")
	err := in.Run()
	runErr := runtimeCode(t, err)
	if runErr.Code != ErrMissingLine {
		t.Fatalf("code = %d, want ErrMissingLine", runErr.Code)
	}
	if runErr.Line != 10 {
		t.Fatalf("line = %d, want 10 (the jumping line)", runErr.Line)
	}
}

func TestIfFalseFallsThrough(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(10, ast.IfStmt{
		Cond: ast.Comparison{Op: ast.RelGt, Left: ast.NumberLit{Value: 1}, Right: ast.NumberLit{Value: 2}},
		Then: ast.GotoStmt{Target: ast.NumberLit{Value: 99}},
	}, "IF 1 > 2 THEN GOTO 99")
	ps.Set(20, ast.LetStmt{Var: 'A', Expr: ast.NumberLit{Value: 1}}, "LET A = 1")
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if in.Var('A') != 1 {
		t.Fatalf("A = %d, want 1 (fall-through reached line 20)", in.Var('A'))
	}
}

func TestInputAssignsSequentiallyWithoutRollback(t *testing.T) {
	in := New()
	in.EnqueueInput("5", "oops")
	err := in.ExecImmediate(ast.InputStmt{Vars: []byte{'A', 'B'}})
	runErr := runtimeCode(t, err)
	if runErr.Code != ErrInvalidInput {
		t.Fatalf("code = %d, want ErrInvalidInput", runErr.Code)
	}
	if in.Var('A') != 5 {
		t.Fatalf("A = %d, want 5 (committed before the failing read)", in.Var('A'))
	}
	if in.Var('B') != 0 {
		t.Fatalf("B = %d, want 0", in.Var('B'))
	}
}

func TestInputProviderSuppliesValues(t *testing.T) {
	in := New()
	var requested []byte
	in.SetInputProvider(func(req InputRequest) (string, error) {
		requested = append(requested, req.Var)
		return "42", nil
	})
	if err := in.ExecImmediate(ast.InputStmt{Vars: []byte{'X'}}); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if in.Var('X') != 42 {
		t.Fatalf("X = %d, want 42", in.Var('X'))
	}
	if len(requested) != 1 || requested[0] != 'X' {
		t.Fatalf("provider saw %v, want [X]", requested)
	}
}

func TestRunResetsVariables(t *testing.T) {
	in := New()
	in.Program().Set(10, ast.EndStmt{}, "END")
	in.SetVar('A', 9)
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if in.Var('A') != 0 {
		t.Fatalf("A = %d, want 0 after RUN", in.Var('A'))
	}
}

func TestRunStmtImmediate(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(10, ast.LetStmt{Var: 'A', Expr: ast.NumberLit{Value: 7}}, "LET A = 7")
	ps.Set(20, ast.EndStmt{}, "END")
	in.SetVar('A', 3)
	if err := in.ExecImmediate(ast.RunStmt{}); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if in.Var('A') != 7 {
		t.Fatalf("A = %d, want 7", in.Var('A'))
	}
}

func TestListEmitsListing(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(20, ast.EndStmt{}, "END")
	ps.Set(10, ast.PrintStmt{Items: []ast.PrintItem{{Text: "HI", IsText: true}}}, `PRINT "HI"`)
	if err := in.ExecImmediate(ast.ListStmt{}); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	out := in.Outputs()
	if len(out) != 2 {
		t.Fatalf("output count = %d, want 2", len(out))
	}
	if out[0].Text != `10 PRINT "HI"` || out[1].Text != "20 END" {
		t.Fatalf("listing = %q, %q", out[0].Text, out[1].Text)
	}
}

func TestClearHaltsAndEmpties(t *testing.T) {
	in := New()
	ps := in.Program()
	ps.Set(10, ast.ClearStmt{}, "CLEAR")
	ps.Set(20, ast.LetStmt{Var: 'A', Expr: ast.NumberLit{Value: 1}}, "LET A = 1")
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if in.Var('A') != 0 {
		t.Fatalf("A = %d, want 0 (line 20 must not run)", in.Var('A'))
	}
	if ps.Len() != 0 {
		t.Fatalf("program len = %d, want 0", ps.Len())
	}
}

func TestPrintConcatenatesItems(t *testing.T) {
	in := New()
	in.SetVar('A', 4)
	err := in.ExecImmediate(ast.PrintStmt{Items: []ast.PrintItem{
		{Text: "A IS ", IsText: true},
		{Expr: ast.VarRef{Name: 'A'}},
	}})
	if err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	out := in.Outputs()
	if len(out) != 1 || out[0].Text != "A IS 4" || !out[0].NewLine {
		t.Fatalf("outputs = %+v, want one chunk %q with line break", out, "A IS 4")
	}
}
