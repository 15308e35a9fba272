package pipeline

import "errors"

// Sentinel errors distinguishing the fatal outcomes of §7's error taxonomy.
// Callers branch on these with errors.Is; Run wraps one of them with %w for
// the configuration, input and cancelled outcomes. A success-with-warnings
// run instead returns a *multierror.Error alongside its Result, and a
// failure while rendering the DOT/CSV output carries none of these
// sentinels.
var (
	// ErrConfiguration marks a configuration error: invalid scoring
	// weights, a malformed filter pattern, or an unknown config field.
	ErrConfiguration = errors.New("pipeline: configuration error")

	// ErrInput marks an input error: the supplied projects cannot be
	// interpreted as a single consistent graph (e.g. two distinct projects
	// claim the same canonical path).
	ErrInput = errors.New("pipeline: input error")

	// ErrCancelled marks a run stopped by context cancellation. No output
	// files are produced for a cancelled run.
	ErrCancelled = errors.New("pipeline: cancelled")
)
