package ast

// Tiny BASIC abstract syntax. Statement and Expr are closed sum types;
// the unexported marker methods keep parser and interpreter dispatch
// exhaustive over the known node kinds.

type Statement interface {
	isStatement()
}

// PrintItem is one element of a PRINT list: either an expression or a
// literal string. IsText tells which, so an empty string literal still
// prints as text.
type PrintItem struct {
	Expr   Expr
	Text   string
	IsText bool
}

type PrintStmt struct {
	Items []PrintItem
}

func (PrintStmt) isStatement() {}

type InputStmt struct {
	Vars []byte
}

func (InputStmt) isStatement() {}

type LetStmt struct {
	Var  byte
	Expr Expr
}

func (LetStmt) isStatement() {}

type IfStmt struct {
	Cond Comparison
	Then Statement
}

func (IfStmt) isStatement() {}

// GotoStmt and GosubStmt carry an expression target; the line number is
// computed at run time.
type GotoStmt struct {
	Target Expr
}

func (GotoStmt) isStatement() {}

type GosubStmt struct {
	Target Expr
}

func (GosubStmt) isStatement() {}

type ReturnStmt struct{}

func (ReturnStmt) isStatement() {}

type EndStmt struct{}

func (EndStmt) isStatement() {}

type RemStmt struct {
	Text string
}

func (RemStmt) isStatement() {}

type ClearStmt struct{}

func (ClearStmt) isStatement() {}

type ListStmt struct{}

func (ListStmt) isStatement() {}

type RunStmt struct{}

func (RunStmt) isStatement() {}

type Expr interface {
	isExpr()
}

type NumberLit struct {
	Value int64
}

func (NumberLit) isExpr() {}

// VarRef names one of the 26 single-letter variables, 'A'..'Z'.
type VarRef struct {
	Name byte
}

func (VarRef) isExpr() {}

type UnaryExpr struct {
	Op   string
	Expr Expr
}

func (UnaryExpr) isExpr() {}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

type GroupExpr struct {
	Inner Expr
}

func (GroupExpr) isExpr() {}

// RelOp is a relational operator. Relational operators appear only in IF
// conditions; Tiny BASIC has no boolean expression type, so Comparison is
// a separate node rather than an Expr.
type RelOp string

const (
	RelEq RelOp = "="
	RelNe RelOp = "<>"
	RelLt RelOp = "<"
	RelLe RelOp = "<="
	RelGt RelOp = ">"
	RelGe RelOp = ">="
)

type Comparison struct {
	Op    RelOp
	Left  Expr
	Right Expr
}
