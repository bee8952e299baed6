// Package render writes a human-readable, optionally colored view of a jar
// tree. Expression nodes render their computed value, the way the
// interactive view shows them, with the raw formula alongside.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jarstore/go-jar/formula"
	"github.com/jarstore/go-jar/ir"
)

type Options struct {
	Color bool
	// ShowIDs prints node ids after each entry, for update/delete targeting.
	ShowIDs bool
}

// Render writes the tree rooted at root. Expressions are evaluated against
// the whole root, not the enclosing container.
func Render(w io.Writer, root []*ir.Node, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	colors := newColors(opts.Color)
	return renderSeq(w, root, root, 0, opts, colors)
}

func renderSeq(w io.Writer, root, seq []*ir.Node, depth int, opts *Options, colors *colors) error {
	indent := strings.Repeat("  ", depth)
	for _, n := range seq {
		name := colors.field(n.Name)
		var line string
		switch n.Kind {
		case ir.DictKind, ir.ListKind:
			line = fmt.Sprintf("%s%s:", indent, name)
		case ir.ExprKind:
			res, err := formula.Evaluate(n.Formula, root)
			shown := res.String()
			if err != nil {
				shown = fmt.Sprintf("%s (%v)", formula.ErrValue, err)
			}
			line = fmt.Sprintf("%s%s: %s  = %s", indent, name,
				colors.value(n.Kind, n.Formula), colors.value(ir.NumberKind, shown))
		default:
			line = fmt.Sprintf("%s%s: %s", indent, name, colors.value(n.Kind, n.ValueString()))
		}
		if opts.ShowIDs {
			line += colors.id("  # " + n.ID)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if n.Kind.IsContainer() {
			if err := renderSeq(w, root, n.Children, depth+1, opts, colors); err != nil {
				return err
			}
		}
	}
	return nil
}
