// Package jardiff computes line diffs between two jar documents.
package jardiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-based diff between two rendered documents. Callers
// canonicalize both sides through the codec first so formatting noise does
// not show up as changes.
func Lines(from, to []byte) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(from), string(to))
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Equal reports whether diffs contain no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Format writes diffs in unified-ish form, one prefixed line per changed
// line, optionally colored.
func Format(w io.Writer, diffs []diffpatch.Diff, colorize bool) error {
	paint := func(prefix, text string, f func(string, ...any) string) error {
		for _, ln := range splitLines(text) {
			out := prefix + ln
			if colorize {
				out = f("%s", out)
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range diffs {
		d := &diffs[i]
		var err error
		switch d.Type {
		case diffpatch.DiffDelete:
			err = paint("-", d.Text, color.RedString)
		case diffpatch.DiffInsert:
			err = paint("+", d.Text, color.GreenString)
		case diffpatch.DiffEqual:
			err = paint(" ", d.Text, fmt.Sprintf)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
