package ir

import (
	"strconv"

	"github.com/jarstore/go-jar/ir/dotpath"
)

// Resolve looks up a dotted path against a node sequence and returns the
// matched node, or nil on a lookup miss. A miss is not an error; callers
// decide whether it is fatal.
//
// Each segment matches a child by name first. If no name matches, the
// segment is re-read as a zero-based decimal index into the same sequence.
// A non-final segment resolving to a non-container node is a miss.
func Resolve(root []*Node, path string) *Node {
	segs, err := dotpath.Parse(path)
	if err != nil {
		return nil
	}
	seq := root
	var node *Node
	for i, seg := range segs {
		node = matchSegment(seq, seg)
		if node == nil {
			return nil
		}
		if i == len(segs)-1 {
			break
		}
		if !node.Kind.IsContainer() {
			return nil
		}
		seq = node.Children
	}
	return node
}

func matchSegment(seq []*Node, seg string) *Node {
	if n := Get(seq, seg); n != nil {
		return n
	}
	// positional fallback, so List lookups survive name drift
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 || idx >= len(seq) {
		return nil
	}
	return seq[idx]
}
