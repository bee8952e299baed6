package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jarstore/go-jar/debug"
	"github.com/jarstore/go-jar/ir"
)

// Result is the outcome of a successful evaluation: either a number or a
// plain text value.
type Result struct {
	Text     string
	Number   float64
	IsNumber bool
}

// String renders the result for display. Numbers use the shortest exact
// decimal form.
func (r Result) String() string {
	if r.IsNumber {
		return strconv.FormatFloat(r.Number, 'f', -1, 64)
	}
	return r.Text
}

var refRx = regexp.MustCompile(`\{\{([A-Za-z0-9_.]+)\}\}`)

// Evaluate resolves the reference tokens in f against root and, when the
// substituted text qualifies, evaluates it as arithmetic.
//
// On failure the returned Result holds the ErrValue sentinel and the error
// is non-nil: ErrReference when a path does not resolve, ErrArithmetic when
// the substituted text fails the arithmetic grammar. A formula with no
// reference tokens is returned unchanged as text.
func Evaluate(f string, root []*ir.Node) (Result, error) {
	matches := refRx.FindAllStringSubmatchIndex(f, -1)
	if len(matches) == 0 {
		return Result{Text: f}, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(f[last:m[0]])
		path := f[m[2]:m[3]]
		node := ir.Resolve(root, path)
		if node == nil {
			if debug.Eval() {
				debug.Logf("eval %q: missing reference %q\n", f, path)
			}
			return Result{Text: ErrValue}, fmt.Errorf("%w: %s", ErrReference, path)
		}
		// Expression nodes substitute their raw formula text; evaluation
		// is one level only.
		b.WriteString(node.ValueString())
		last = m[1]
	}
	b.WriteString(f[last:])
	s := b.String()
	// At least one reference was substituted to get here; the remaining
	// gate is whether the text looks arithmetic at all.
	if !looksArithmetic(s) || !strictArithmetic(s) {
		return Result{Text: s}, nil
	}
	n, err := evalArith(s)
	if err != nil {
		if debug.Eval() {
			debug.Logf("eval %q => %q: %v\n", f, s, err)
		}
		return Result{Text: ErrValue}, fmt.Errorf("%w: %v", ErrArithmetic, err)
	}
	return Result{Number: n, IsNumber: true}, nil
}

// looksArithmetic reports whether s contains an operator or parenthesis
// character, or is itself a valid number.
func looksArithmetic(s string) bool {
	if strings.ContainsAny(s, "+-*/%()") {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// strictArithmetic reports whether s contains only characters the
// arithmetic grammar understands. Substituted text that produced anything
// else (letters, braces, ...) is kept as text instead.
func strictArithmetic(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '%':
		case r == '(' || r == ')' || r == '.':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return false
		}
	}
	return true
}
