package codec

import (
	"fmt"

	"github.com/jarstore/go-jar/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge applies an RFC 7386 JSON merge patch to root's export and imports
// the result. The input tree is not modified; on any failure the caller's
// state is unchanged.
func Merge(root []*ir.Node, patch []byte) ([]*ir.Node, error) {
	cur, err := Marshal(root)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(cur, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	return Unmarshal(merged)
}
