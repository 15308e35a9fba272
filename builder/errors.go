// Package: depscope/builder
//
// errors.go — sentinel errors for the Graph Builder (C1).
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w (see builderErrorf below).

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyProjectName indicates a ProjectInfo was supplied with an empty
// Name, making it impossible to resolve references to it by name.
var ErrEmptyProjectName = errors.New("builder: project name is empty")

// ErrConflictingIdentity indicates two distinct ProjectInfo records
// disagree about which project owns a canonical path (§4.1). Together with
// ErrEmptyProjectName it is one of the two hard failures the builder raises.
var ErrConflictingIdentity = errors.New("builder: conflicting project identity for path")

// builderErrorf wraps an inner error message with the given method context,
// producing "<Method>: <formatted message>". A %w verb in format keeps the
// wrapped error reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
