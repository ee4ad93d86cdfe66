package runfiles

import (
	"errors"
	"fmt"
)

// ErrUnknown reports a well-formed logical path the active resolver has no
// mapping for. It is an outcome, not a malfunction: callers that can live
// without the runfile match it with errors.Is and move on.
var ErrUnknown = errors.New("unknown runfile")

// InvalidPathError reports a lookup argument rejected before any resolution
// was attempted.
type InvalidPathError struct {
	// Path is the rejected argument, verbatim.
	Path string
	// Reason says what rule the path broke.
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("runfiles: invalid path %q: %s", e.Path, e.Reason)
}
