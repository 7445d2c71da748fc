package parser

// Pos is a 1-based source position. Line is the line index within the
// submitted text (always 1 for single-line submissions); Col counts runes.
type Pos struct {
	Line int
	Col  int
}

type tokenKind int

const (
	tokEOL tokenKind = iota
	tokNumber
	tokString
	tokVar
	tokKeyword
	tokOp
	tokRel
	tokComma
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	lit  string
	pos  Pos
}

// Reserved words of the dialect. Keyword recognition is case-sensitive:
// lower-case words are not keywords, and since variables are single
// letters they are not identifiers either.
var keywords = map[string]bool{
	"PRINT":  true,
	"IF":     true,
	"THEN":   true,
	"GOTO":   true,
	"INPUT":  true,
	"LET":    true,
	"GOSUB":  true,
	"RETURN": true,
	"CLEAR":  true,
	"LIST":   true,
	"RUN":    true,
	"END":    true,
	"REM":    true,
}
