package parser

import (
	"strconv"

	"github.com/gosuda/tinybasic/ast"
)

type lineParser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *lineParser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{kind: tokEOL}
	}
	return p.tokens[p.pos]
}

func (p *lineParser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *lineParser) unexpected(want string) error {
	t := p.peek()
	return &SyntaxError{Code: UnexpectedToken, Pos: t.pos, Got: t.lit, Want: want}
}

// parseExpression handles the additive level: term {("+"|"-") term},
// left-associative. Precedence is structural: expression calls term
// calls factor.
func (p *lineParser) parseExpression() (ast.Expr, error) {
	p.depth++
	if p.depth > 128 {
		return nil, p.unexpected("shallower nesting")
	}
	defer func() { p.depth-- }()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.lit != "+" && t.lit != "-") {
			break
		}
		op := p.next().lit
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *lineParser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.lit != "*" && t.lit != "/") {
			break
		}
		op := p.next().lit
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor handles numbers, variables, grouping, and the unary signs,
// which bind tighter than any binary operator. Negative literals are
// produced here: the lexer emits "-" and "5" for "-5".
func (p *lineParser) parseFactor() (ast.Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokOp:
		if t.lit == "+" || t.lit == "-" {
			p.next()
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return ast.UnaryExpr{Op: t.lit, Expr: operand}, nil
		}
		return nil, p.unexpected("expression")
	case tokNumber:
		p.next()
		v, err := strconv.ParseInt(t.lit, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Code: UnexpectedToken, Pos: t.pos, Got: t.lit, Want: "number"}
		}
		return ast.NumberLit{Value: v}, nil
	case tokVar:
		p.next()
		return ast.VarRef{Name: t.lit[0]}, nil
	case tokLParen:
		open := p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, &SyntaxError{Code: UnmatchedParenthesis, Pos: open.pos, Got: p.peek().lit}
		}
		p.next()
		return ast.GroupExpr{Inner: inner}, nil
	default:
		return nil, p.unexpected("expression")
	}
}

// parseComparison parses the IF condition: expression relop expression.
func (p *lineParser) parseComparison() (ast.Comparison, error) {
	left, err := p.parseExpression()
	if err != nil {
		return ast.Comparison{}, err
	}
	t := p.peek()
	if t.kind != tokRel {
		return ast.Comparison{}, p.unexpected("relational operator")
	}
	p.next()
	right, err := p.parseExpression()
	if err != nil {
		return ast.Comparison{}, err
	}
	return ast.Comparison{Op: ast.RelOp(t.lit), Left: left, Right: right}, nil
}
