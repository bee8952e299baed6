package ir

import (
	"strconv"
	"strings"

	"github.com/jarstore/go-jar/debug"
	"github.com/jarstore/go-jar/ir/dotpath"
)

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// DeepSet walks path segment by segment, matching children by name only
// (no positional fallback during mutation), and upserts val at the final
// segment. Missing intermediate segments are created as Dictionary nodes.
// If a non-final segment hits a non-container node, the tree is returned
// unchanged and ok is false; callers can distinguish "applied" from
// "blocked by a conflicting leaf" but no error is surfaced.
//
// val is a prototype carrying the kind and payload to set; its id and name
// are ignored. At an existing final node the payload and kind are replaced
// in place, preserving the node's id and its position among siblings.
// Otherwise a fresh leaf is appended. The operation is idempotent.
func DeepSet(root []*Node, path string, val *Node) (newRoot []*Node, ok bool) {
	segs, err := dotpath.Parse(path)
	if err != nil {
		return root, false
	}
	if debug.Mutate() {
		debug.Logf("deep-set %s (%s)\n", path, val.Kind)
	}
	return deepSet(root, segs, val)
}

func deepSet(seq []*Node, segs []string, val *Node) ([]*Node, bool) {
	seg := segs[0]
	found := Get(seq, seg)
	if len(segs) == 1 {
		if found != nil {
			found.SetPayload(val)
			return seq, true
		}
		leaf := val.Clone()
		leaf.ID = NewID()
		leaf.Name = seg
		return append(seq, leaf), true
	}
	if found == nil {
		found = NewDict(seg)
		seq = append(seq, found)
	} else if !found.Kind.IsContainer() {
		// type mismatch on an intermediate segment: no-op
		if debug.Mutate() {
			debug.Logf("deep-set blocked at %q by %s leaf\n", seg, found.Kind)
		}
		return seq, false
	}
	children, ok := deepSet(found.Children, segs[1:], val)
	found.Children = children
	return seq, ok
}

// UpdateValue replaces the payload of the node matching id, parsing raw
// according to the node's existing kind. The kind never changes. Edits on
// containers are rejected, an unparseable number leaves the node untouched,
// and an absent id is a no-op.
func UpdateValue(root []*Node, id, raw string) []*Node {
	node := FindID(root, id)
	if node == nil {
		return root
	}
	switch node.Kind {
	case TextKind:
		node.String = raw
	case NumberKind:
		f, err := parseNumber(raw)
		if err == nil {
			node.Float64 = f
		}
	case BoolKind:
		node.Bool = raw == "true"
	case ExprKind:
		node.Formula = raw
	}
	return root
}

// Delete removes the node matching id from its parent's sequence. Sibling
// order is preserved and List-child names are not renumbered; positional
// fallback in Resolve keeps index lookups correct afterwards.
func Delete(root []*Node, id string) []*Node {
	for i, n := range root {
		if n.ID == id {
			return append(root[:i:i], root[i+1:]...)
		}
	}
	for _, n := range root {
		if n.Kind.IsContainer() {
			n.Children = Delete(n.Children, id)
		}
	}
	return root
}
