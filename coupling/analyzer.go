package coupling

import (
	"context"

	"github.com/archscope/depscope/core"
)

// Signals is everything the rest of the pipeline needs from the semantic
// backend for one project: cross-project call-site counts for the Coupling
// Annotator (C4), plus the complexity and API-exposure raw inputs the
// Extraction Scorer (C6) combines with coupling into a final score.
//
// A single per-project Signals bundle — rather than one call per metric —
// matches how a real compiler-frontend analysis would amortise the cost of
// loading a project's syntax trees once and deriving every signal from it.
type Signals struct {
	// CallSitesByTargetAssembly aggregates cross-project call-sites per
	// §4.4's enumeration (invocation, constructor, property access,
	// indexer, user-defined operator, user-defined conversion), keyed by
	// the target's assembly name.
	CallSitesByTargetAssembly map[string]int

	// AvgCyclomaticComplexity is the arithmetic mean McCabe complexity
	// across the project's executable units (§4.6b).
	AvgCyclomaticComplexity float64

	// ExternalEndpointCount is the total Web API + WebMethod + WCF
	// endpoint count (§4.6d).
	ExternalEndpointCount int
}

// SemanticAnalyzer is the capability seam standing in for the out-of-scope
// compiler frontend (§1). Analyze returns an error when the project cannot
// be processed (e.g. a missing or unparsable compilation unit); callers
// MUST fall back to the documented defaults rather than propagate the
// error as fatal.
type SemanticAnalyzer interface {
	Analyze(ctx context.Context, project *core.Project) (Signals, error)
}
