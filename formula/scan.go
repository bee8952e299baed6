package formula

import (
	"fmt"
	"strconv"
)

type tokKind int

const (
	tokNumber tokKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokLParen
	tokRParen
	tokEOF
)

func (k tokKind) String() string {
	s, ok := map[tokKind]string{
		tokNumber:  "number",
		tokPlus:    "'+'",
		tokMinus:   "'-'",
		tokStar:    "'*'",
		tokSlash:   "'/'",
		tokPercent: "'%'",
		tokLParen:  "'('",
		tokRParen:  "')'",
		tokEOF:     "end of expression",
	}[k]
	if ok {
		return s
	}
	return "<unknown token>"
}

type tok struct {
	kind tokKind
	num  float64
	pos  int
}

// scanArith tokenizes a strict arithmetic string into numbers, operators,
// and parentheses. The input has already passed the strict character set
// check, so only malformed numbers can fail here.
func scanArith(s string) ([]tok, error) {
	var toks []tok
	i, n := 0, len(s)
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < n && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
				i++
			}
			f, err := strconv.ParseFloat(s[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q at %d", s[start:i], start)
			}
			toks = append(toks, tok{kind: tokNumber, num: f, pos: start})
		default:
			kind, ok := map[byte]tokKind{
				'+': tokPlus,
				'-': tokMinus,
				'*': tokStar,
				'/': tokSlash,
				'%': tokPercent,
				'(': tokLParen,
				')': tokRParen,
			}[c]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at %d", c, i)
			}
			toks = append(toks, tok{kind: kind, pos: i})
			i++
		}
	}
	return append(toks, tok{kind: tokEOF, pos: n}), nil
}
