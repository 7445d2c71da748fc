package parser

import (
	"strconv"
	"strings"

	"github.com/gosuda/tinybasic/ast"
)

// Line is the result of parsing one submitted line. A leading line number
// is stripped and reported separately for program store placement; a bare
// line number (no statement) is a deletion request with a nil Stmt.
type Line struct {
	Number    int
	HasNumber bool
	Stmt      ast.Statement
	Source    string
}

// ParseLine parses one line of source into exactly one statement,
// optionally preceded by a line number.
func ParseLine(text string) (Line, error) {
	return ParseLineAt(text, 1)
}

// ParseLineAt is ParseLine with an explicit 1-based source line index for
// diagnostics, used when loading whole files.
func ParseLineAt(text string, srcLine int) (Line, error) {
	toks, err := lexLine(text, srcLine)
	if err != nil {
		return Line{}, err
	}
	p := &lineParser{tokens: toks}

	var ln Line
	if t := p.peek(); t.kind == tokNumber {
		n, err := strconv.Atoi(t.lit)
		if err != nil || n <= 0 {
			return Line{}, &SyntaxError{Code: UnexpectedToken, Pos: t.pos, Got: t.lit, Want: "positive line number"}
		}
		p.next()
		ln.Number = n
		ln.HasNumber = true
		ln.Source = statementSource(text, t)
		if p.peek().kind == tokEOL {
			return ln, nil
		}
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return Line{}, err
	}
	if p.peek().kind != tokEOL {
		return Line{}, p.unexpected("end of line")
	}
	ln.Stmt = stmt
	if !ln.HasNumber {
		ln.Source = strings.TrimSpace(text)
	}
	return ln, nil
}

// statementSource returns the text after the leading line-number token,
// preserved verbatim for LIST and external persistence.
func statementSource(text string, numTok token) string {
	r := []rune(text)
	end := numTok.pos.Col - 1 + len(numTok.lit)
	if end > len(r) {
		end = len(r)
	}
	return strings.TrimSpace(string(r[end:]))
}

// parseStatement dispatches on the leading keyword. An unrecognized
// leading token is an UnknownStatement error.
func (p *lineParser) parseStatement() (ast.Statement, error) {
	t := p.peek()
	if t.kind != tokKeyword {
		return nil, &SyntaxError{Code: UnknownStatement, Pos: t.pos, Got: t.lit}
	}
	p.next()
	switch t.lit {
	case "PRINT":
		return p.parsePrint()
	case "IF":
		return p.parseIf()
	case "GOTO":
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.GotoStmt{Target: target}, nil
	case "GOSUB":
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.GosubStmt{Target: target}, nil
	case "INPUT":
		return p.parseInput()
	case "LET":
		return p.parseLet()
	case "RETURN":
		return ast.ReturnStmt{}, nil
	case "END":
		return ast.EndStmt{}, nil
	case "CLEAR":
		return ast.ClearStmt{}, nil
	case "LIST":
		return ast.ListStmt{}, nil
	case "RUN":
		return ast.RunStmt{}, nil
	case "REM":
		rest := p.next()
		return ast.RemStmt{Text: rest.lit}, nil
	default:
		// THEN outside an IF lands here.
		return nil, &SyntaxError{Code: UnknownStatement, Pos: t.pos, Got: t.lit}
	}
}

// parsePrint parses a comma-separated list of string literals and
// expressions. An empty list is legal and prints a bare line break.
func (p *lineParser) parsePrint() (ast.Statement, error) {
	var items []ast.PrintItem
	if p.peek().kind == tokEOL {
		return ast.PrintStmt{}, nil
	}
	for {
		if t := p.peek(); t.kind == tokString {
			p.next()
			items = append(items, ast.PrintItem{Text: t.lit, IsText: true})
		} else {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			items = append(items, ast.PrintItem{Expr: expr})
		}
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	return ast.PrintStmt{Items: items}, nil
}

func (p *lineParser) parseIf() (ast.Statement, error) {
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokKeyword || t.lit != "THEN" {
		return nil, p.unexpected("THEN")
	}
	p.next()
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.IfStmt{Cond: cond, Then: then}, nil
}

func (p *lineParser) parseInput() (ast.Statement, error) {
	var vars []byte
	for {
		t := p.peek()
		if t.kind != tokVar {
			return nil, p.unexpected("variable")
		}
		p.next()
		vars = append(vars, t.lit[0])
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	return ast.InputStmt{Vars: vars}, nil
}

func (p *lineParser) parseLet() (ast.Statement, error) {
	t := p.peek()
	if t.kind != tokVar {
		return nil, p.unexpected("variable")
	}
	p.next()
	if eq := p.peek(); eq.kind != tokRel || eq.lit != "=" {
		return nil, p.unexpected("=")
	}
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.LetStmt{Var: t.lit[0], Expr: expr}, nil
}

// IsBlank reports whether the submitted text contains no tokens at all.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
