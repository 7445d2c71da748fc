package tbruntime

import "github.com/gosuda/tinybasic/ast"

// evalExpr evaluates an expression under the current variable store. It
// is pure on the read side: no side effects beyond a possible runtime
// error, so evaluating twice under unchanged variables is deterministic.
func (in *Interp) evalExpr(expr ast.Expr) (int64, error) {
	switch e := expr.(type) {
	case ast.NumberLit:
		return e.Value, nil
	case ast.VarRef:
		return in.Var(e.Name), nil
	case ast.GroupExpr:
		return in.evalExpr(e.Inner)
	case ast.UnaryExpr:
		v, err := in.evalExpr(e.Expr)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return v, nil
		case "-":
			return -v, nil
		default:
			return 0, in.runErr(ErrUndefinedOperator, "unary %q", e.Op)
		}
	case ast.BinaryExpr:
		l, err := in.evalExpr(e.Left)
		if err != nil {
			return 0, err
		}
		r, err := in.evalExpr(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return 0, in.runErr(ErrDivisionByZero, "%d / 0", l)
			}
			return l / r, nil
		default:
			return 0, in.runErr(ErrUndefinedOperator, "binary %q", e.Op)
		}
	default:
		return 0, in.runErr(ErrUndefinedOperator, "unhandled expression %T", expr)
	}
}

func (in *Interp) evalComparison(c ast.Comparison) (bool, error) {
	l, err := in.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	r, err := in.evalExpr(c.Right)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case ast.RelEq:
		return l == r, nil
	case ast.RelNe:
		return l != r, nil
	case ast.RelLt:
		return l < r, nil
	case ast.RelLe:
		return l <= r, nil
	case ast.RelGt:
		return l > r, nil
	case ast.RelGe:
		return l >= r, nil
	default:
		return false, in.runErr(ErrUndefinedOperator, "relational %q", c.Op)
	}
}
