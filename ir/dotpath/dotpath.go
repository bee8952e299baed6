// Package dotpath parses the dotted paths used to address jar nodes.
//
// A path is a '.'-delimited sequence of segments, each matching
// [A-Za-z0-9_]+. Segments name a child under a Dictionary, or a zero-based
// decimal index under a List.
package dotpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmpty      = errors.New("empty path")
	ErrBadSegment = errors.New("invalid path segment")
)

var segmentRx = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Parse splits path into its segments, validating each one.
func Parse(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmpty
	}
	segs := strings.Split(path, ".")
	for _, seg := range segs {
		if !segmentRx.MatchString(seg) {
			return nil, fmt.Errorf("%w: %q in %q", ErrBadSegment, seg, path)
		}
	}
	return segs, nil
}

// Valid reports whether path parses.
func Valid(path string) bool {
	_, err := Parse(path)
	return err == nil
}

// Join assembles segments back into a path string.
func Join(segs []string) string {
	return strings.Join(segs, ".")
}
