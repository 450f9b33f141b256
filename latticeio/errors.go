package latticeio

import "errors"

// ErrDecode indicates a document that cannot be turned into a cell or
// lattice: malformed YAML or an inconsistent strength entry.
var ErrDecode = errors.New("latticeio: decode failed")
