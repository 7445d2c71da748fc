package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gosuda/tinybasic/ast"
)

func mustParse(t *testing.T, text string) Line {
	t.Helper()
	ln, err := ParseLine(text)
	if err != nil {
		t.Fatalf("ParseLine(%q) failed: %v", text, err)
	}
	return ln
}

func TestParseLet(t *testing.T) {
	ln := mustParse(t, "LET A = 5")
	want := ast.LetStmt{Var: 'A', Expr: ast.NumberLit{Value: 5}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParsePrecedence(t *testing.T) {
	ln := mustParse(t, "LET A = 1 + 2 * 3")
	want := ast.LetStmt{Var: 'A', Expr: ast.BinaryExpr{
		Op:   "+",
		Left: ast.NumberLit{Value: 1},
		Right: ast.BinaryExpr{
			Op:    "*",
			Left:  ast.NumberLit{Value: 2},
			Right: ast.NumberLit{Value: 3},
		},
	}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	ln := mustParse(t, "LET A = 1 - 2 - 3")
	want := ast.LetStmt{Var: 'A', Expr: ast.BinaryExpr{
		Op: "-",
		Left: ast.BinaryExpr{
			Op:    "-",
			Left:  ast.NumberLit{Value: 1},
			Right: ast.NumberLit{Value: 2},
		},
		Right: ast.NumberLit{Value: 3},
	}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseUnaryBindsTighter(t *testing.T) {
	ln := mustParse(t, "LET A = -B * 2")
	want := ast.LetStmt{Var: 'A', Expr: ast.BinaryExpr{
		Op:    "*",
		Left:  ast.UnaryExpr{Op: "-", Expr: ast.VarRef{Name: 'B'}},
		Right: ast.NumberLit{Value: 2},
	}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseGrouping(t *testing.T) {
	ln := mustParse(t, "LET A = (1 + 2) * 3")
	want := ast.LetStmt{Var: 'A', Expr: ast.BinaryExpr{
		Op: "*",
		Left: ast.GroupExpr{Inner: ast.BinaryExpr{
			Op:    "+",
			Left:  ast.NumberLit{Value: 1},
			Right: ast.NumberLit{Value: 2},
		}},
		Right: ast.NumberLit{Value: 3},
	}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseNumberedLine(t *testing.T) {
	ln := mustParse(t, "  10   PRINT A")
	if !ln.HasNumber || ln.Number != 10 {
		t.Fatalf("line number = (%v, %d), want (true, 10)", ln.HasNumber, ln.Number)
	}
	if ln.Source != "PRINT A" {
		t.Fatalf("source = %q, want %q", ln.Source, "PRINT A")
	}
	if _, ok := ln.Stmt.(ast.PrintStmt); !ok {
		t.Fatalf("stmt = %T, want PrintStmt", ln.Stmt)
	}
}

func TestParseBareNumberIsDeletion(t *testing.T) {
	ln := mustParse(t, "10")
	if !ln.HasNumber || ln.Number != 10 {
		t.Fatalf("line number = (%v, %d), want (true, 10)", ln.HasNumber, ln.Number)
	}
	if ln.Stmt != nil {
		t.Fatalf("stmt = %#v, want nil", ln.Stmt)
	}
}

func TestParseZeroLineNumberRejected(t *testing.T) {
	_, err := ParseLine("0 PRINT A")
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestParseIfThen(t *testing.T) {
	ln := mustParse(t, "IF A <= 3 THEN GOTO 20")
	want := ast.IfStmt{
		Cond: ast.Comparison{
			Op:    ast.RelLe,
			Left:  ast.VarRef{Name: 'A'},
			Right: ast.NumberLit{Value: 3},
		},
		Then: ast.GotoStmt{Target: ast.NumberLit{Value: 20}},
	}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParsePrintList(t *testing.T) {
	ln := mustParse(t, `PRINT "X", A + 1, "Y"`)
	want := ast.PrintStmt{Items: []ast.PrintItem{
		{Text: "X", IsText: true},
		{Expr: ast.BinaryExpr{Op: "+", Left: ast.VarRef{Name: 'A'}, Right: ast.NumberLit{Value: 1}}},
		{Text: "Y", IsText: true},
	}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseEmptyPrint(t *testing.T) {
	ln := mustParse(t, "PRINT")
	if stmt, ok := ln.Stmt.(ast.PrintStmt); !ok || len(stmt.Items) != 0 {
		t.Fatalf("stmt = %#v, want empty PrintStmt", ln.Stmt)
	}
}

func TestParseInputList(t *testing.T) {
	ln := mustParse(t, "INPUT A, B, C")
	want := ast.InputStmt{Vars: []byte{'A', 'B', 'C'}}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseRem(t *testing.T) {
	ln := mustParse(t, "100 REM set up the loop counter")
	want := ast.RemStmt{Text: "set up the loop counter"}
	if !reflect.DeepEqual(ln.Stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", ln.Stmt, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		code SyntaxErrorCode
	}{
		{"A = 5", UnknownStatement},
		{"THEN GOTO 10", UnknownStatement},
		{"LET A 5", UnexpectedToken},
		{"LET 5 = A", UnexpectedToken},
		{"GOTO", UnexpectedToken},
		{"INPUT 5", UnexpectedToken},
		{"IF A > 1 GOTO 10", UnexpectedToken},
		{"PRINT (1 + 2", UnmatchedParenthesis},
		{"END END", UnexpectedToken},
		{"10 20 PRINT A", UnknownStatement},
	}
	for _, tc := range cases {
		_, err := ParseLine(tc.text)
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("%q: expected SyntaxError, got %v", tc.text, err)
		}
		if synErr.Code != tc.code {
			t.Fatalf("%q: code = %d, want %d", tc.text, synErr.Code, tc.code)
		}
	}
}

func TestParseDepthGuard(t *testing.T) {
	text := "LET A = "
	for i := 0; i < 200; i++ {
		text += "("
	}
	text += "1"
	for i := 0; i < 200; i++ {
		text += ")"
	}
	if _, err := ParseLine(text); err == nil {
		t.Fatal("expected error for pathological nesting")
	}
}
