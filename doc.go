// Package depscope is a dependency-analysis pipeline for large .NET
// solutions: it builds a typed project dependency graph, filters out
// framework/BCL noise, detects circular dependencies, annotates edges with
// semantic coupling weights, ranks weak edges as cycle-breaking
// suggestions, scores every project's extraction difficulty, and emits a
// colour-coded Graphviz diagram plus CSV reports.
//
// Under the hood, the pipeline is organized into one subpackage per stage:
//
//	core/      — Project, Edge, Graph: the shared, thread-safe domain types
//	loader/    — default .csproj-shaped XML -> core.ProjectInfo reader
//	builder/   — Graph Builder (C1): resolves references into a core.Graph
//	filter/    — Framework Filter (C2): drops edges to block-listed targets
//	cycles/    — Cycle Detector (C3): Tarjan SCCs, size >= 2
//	coupling/  — Coupling Annotator (C4): semantic call-site weighting
//	recommend/ — Weak-Edge & Recommendation Engine (C5)
//	scoring/   — Extraction Scorer (C6): coupling/complexity/tech-debt/API
//	emit/      — DOT + CSV Emitter (C7)
//	pipeline/  — Run: wires C1-C7 into one end-to-end call
//	config/    — on-disk YAML configuration for C2 and C6
//	cmd/depscope/ — the CLI entry point
//
// See SPEC_FULL.md for the full module-by-module specification and
// DESIGN.md for the rationale behind each package's design.
package depscope
