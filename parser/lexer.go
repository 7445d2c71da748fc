package parser

import "unicode"

// lexLine tokenizes one line of source. The result always ends with an
// EOL token. Whitespace outside string literals is discarded. srcLine is
// the 1-based line index used for diagnostic positions.
func lexLine(text string, srcLine int) ([]token, error) {
	r := []rune(text)
	toks := make([]token, 0, len(r)/2)
	at := func(i int) Pos { return Pos{Line: srcLine, Col: i + 1} }

	for i := 0; i < len(r); {
		ch := r[i]
		if unicode.IsSpace(ch) {
			i++
			continue
		}
		if ch >= '0' && ch <= '9' {
			j := i + 1
			for j < len(r) && r[j] >= '0' && r[j] <= '9' {
				j++
			}
			toks = append(toks, token{kind: tokNumber, lit: string(r[i:j]), pos: at(i)})
			i = j
			continue
		}
		if ch == '"' {
			j := i + 1
			for j < len(r) && r[j] != '"' {
				j++
			}
			if j >= len(r) {
				return nil, &LexError{Code: UnterminatedString, Pos: at(i)}
			}
			toks = append(toks, token{kind: tokString, lit: string(r[i+1 : j]), pos: at(i)})
			i = j + 1
			continue
		}
		if unicode.IsLetter(ch) {
			j := i + 1
			for j < len(r) && unicode.IsLetter(r[j]) {
				j++
			}
			word := string(r[i:j])
			if keywords[word] {
				toks = append(toks, token{kind: tokKeyword, lit: word, pos: at(i)})
				if word == "REM" {
					// The remainder of the line is comment text.
					rest := ""
					if j < len(r) {
						k := j
						for k < len(r) && unicode.IsSpace(r[k]) {
							k++
						}
						rest = string(r[k:])
					}
					toks = append(toks, token{kind: tokString, lit: rest, pos: at(j)})
					toks = append(toks, token{kind: tokEOL, pos: at(len(r))})
					return toks, nil
				}
				i = j
				continue
			}
			if j-i == 1 && ch >= 'A' && ch <= 'Z' {
				toks = append(toks, token{kind: tokVar, lit: word, pos: at(i)})
				i = j
				continue
			}
			return nil, &LexError{Code: InvalidIdentifier, Pos: at(i), Word: word}
		}
		if i+1 < len(r) {
			two := string(r[i : i+2])
			switch two {
			case "<=", ">=", "<>":
				toks = append(toks, token{kind: tokRel, lit: two, pos: at(i)})
				i += 2
				continue
			case "><":
				// Classic alias for not-equal.
				toks = append(toks, token{kind: tokRel, lit: "<>", pos: at(i)})
				i += 2
				continue
			}
		}
		switch ch {
		case '+', '-', '*', '/':
			toks = append(toks, token{kind: tokOp, lit: string(ch), pos: at(i)})
			i++
		case '=', '<', '>':
			toks = append(toks, token{kind: tokRel, lit: string(ch), pos: at(i)})
			i++
		case ',':
			toks = append(toks, token{kind: tokComma, lit: ",", pos: at(i)})
			i++
		case '(':
			toks = append(toks, token{kind: tokLParen, lit: "(", pos: at(i)})
			i++
		case ')':
			toks = append(toks, token{kind: tokRParen, lit: ")", pos: at(i)})
			i++
		default:
			return nil, &LexError{Code: UnexpectedCharacter, Pos: at(i), Char: ch}
		}
	}
	toks = append(toks, token{kind: tokEOL, pos: at(len(r))})
	return toks, nil
}
