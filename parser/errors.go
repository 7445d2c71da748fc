package parser

import "fmt"

type LexErrorCode int

const (
	UnterminatedString LexErrorCode = iota
	UnexpectedCharacter
	InvalidIdentifier
)

// LexError is fatal to lexing the submitted line but recoverable at line
// granularity; other stored lines are unaffected.
type LexError struct {
	Code LexErrorCode
	Pos  Pos
	Char rune
	Word string
}

func (e *LexError) Error() string {
	switch e.Code {
	case UnterminatedString:
		return fmt.Sprintf("%d:%d: unterminated string literal", e.Pos.Line, e.Pos.Col)
	case InvalidIdentifier:
		return fmt.Sprintf("%d:%d: invalid identifier %q (variables are single letters)", e.Pos.Line, e.Pos.Col, e.Word)
	default:
		return fmt.Sprintf("%d:%d: unexpected character %q", e.Pos.Line, e.Pos.Col, e.Char)
	}
}

type SyntaxErrorCode int

const (
	UnexpectedToken SyntaxErrorCode = iota
	UnknownStatement
	UnmatchedParenthesis
)

// SyntaxError reports one malformed line. A line that fails to parse is
// never stored, and parsing does not attempt multi-statement recovery.
type SyntaxError struct {
	Code SyntaxErrorCode
	Pos  Pos
	Got  string
	Want string
}

func (e *SyntaxError) Error() string {
	switch e.Code {
	case UnknownStatement:
		return fmt.Sprintf("%d:%d: unknown statement %q", e.Pos.Line, e.Pos.Col, e.Got)
	case UnmatchedParenthesis:
		return fmt.Sprintf("%d:%d: unmatched parenthesis", e.Pos.Line, e.Pos.Col)
	default:
		if e.Want != "" {
			return fmt.Sprintf("%d:%d: unexpected token %s, expected %s", e.Pos.Line, e.Pos.Col, tokenDesc(e.Got), e.Want)
		}
		return fmt.Sprintf("%d:%d: unexpected token %s", e.Pos.Line, e.Pos.Col, tokenDesc(e.Got))
	}
}

func tokenDesc(lit string) string {
	if lit == "" {
		return "end of line"
	}
	return fmt.Sprintf("%q", lit)
}
