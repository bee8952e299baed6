package codec

import "errors"

// ErrImport wraps any malformed document supplied to an import. The
// caller's tree is left untouched.
var ErrImport = errors.New("import format error")
