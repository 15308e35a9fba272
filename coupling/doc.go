// Package coupling implements the Coupling Annotator (C4): for each edge in
// the graph it resolves a semantic weight — the count of cross-project
// call-sites from the source project to the target's assembly — replacing
// the default coupling of 1/Weak, per §4.4.
//
// The semantic code analysis backend itself (method-call resolution,
// symbol binding) is out of scope (§1); SemanticAnalyzer is the capability
// seam. This package ships one concrete implementation, FactAnalyzer, that
// computes signals from a pre-extracted FactStore instead of a live
// compiler frontend, honouring the documented fallback (coupling stays
// 1/Weak, a warning is recorded) whenever facts for a project are absent.
//
// Annotation is the longest-running stage (§5): AnalyzeAll fans work out
// per-vertex with golang.org/x/sync/errgroup, bounded by GOMAXPROCS, and
// honours ctx cancellation between projects.
package coupling
