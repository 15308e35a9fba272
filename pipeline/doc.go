// Package pipeline wires the Graph Builder (C1), Framework Filter (C2),
// Cycle Detector (C3), Coupling Annotator (C4), Weak-Edge & Recommendation
// Engine (C5), Extraction Scorer (C6), and DOT/CSV Emitter (C7) into a
// single end-to-end Run, per §5/§7's orchestration and error-taxonomy
// description.
//
// Run distinguishes five outcomes: success, success-with-warnings,
// configuration error, input error, and cancelled. Configuration and input
// errors are returned immediately, before any stage runs or partway through
// stage construction, never as a Warning. Resolution and analysis-
// degradation conditions are collected as []core.Warning across every stage
// into Result.Warnings and folded into a single *multierror.Error returned
// alongside the Result, never aborting the run.
package pipeline
