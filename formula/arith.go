package formula

import (
	"fmt"
	"math"
)

// evalArith parses and evaluates a strict arithmetic expression:
//
//	expr    := term  { ('+' | '-') term }
//	term    := unary { ('*' | '/' | '%') unary }
//	unary   := '-' unary | primary
//	primary := number | '(' expr ')'
//
// Division and modulo use float64 semantics.
func evalArith(s string) (float64, error) {
	toks, err := scanArith(s)
	if err != nil {
		return 0, err
	}
	p := &arithParser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, fmt.Errorf("unexpected %s at %d", t.kind, t.pos)
	}
	return v, nil
}

type arithParser struct {
	toks []tok
	i    int
}

func (p *arithParser) peek() tok {
	return p.toks[p.i]
}

func (p *arithParser) next() tok {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *arithParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v += rhs
		case tokMinus:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *arithParser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case tokSlash:
			p.next()
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			v /= rhs
		case tokPercent:
			p.next()
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			v = math.Mod(v, rhs)
		default:
			return v, nil
		}
	}
}

func (p *arithParser) unary() (float64, error) {
	if p.peek().kind == tokMinus {
		p.next()
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.primary()
}

func (p *arithParser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if c := p.next(); c.kind != tokRParen {
			return 0, fmt.Errorf("expected ')' at %d, got %s", c.pos, c.kind)
		}
		return v, nil
	case tokEOF:
		return 0, fmt.Errorf("unexpected end of expression at %d", t.pos)
	default:
		return 0, fmt.Errorf("unexpected %s at %d", t.kind, t.pos)
	}
}
