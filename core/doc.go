// Package core defines the shared data model for the dependency-analysis
// pipeline (§3): Project (vertex), Reference (declared dependency, as
// reported by the external manifest loader), Edge (resolved dependency,
// directed, one per (source,target,kind)), and Graph, the thread-safe
// in-memory store every later stage (C2-C7) reads.
//
// Graph G = (V,E) is deliberately narrower than a general-purpose graph
// library: always directed, no self-loops, no parallel edges beyond the
// documented (source,target,kind) multiplicity, and not weighted in the
// generic sense — the only mutable per-edge field is CouplingScore, written
// once by the Coupling Annotator (C4).
//
// Concurrency model:
//
//   - muVert guards the vertex map; muEdge guards edges and adjacency.
//   - Reads (Vertices, Edges, OutEdges, InEdges, degrees) take RLocks and
//     are safe to call concurrently from multiple goroutines, e.g. the
//     per-project fan-out in C4/C6 (§5).
//   - SetCoupling is the only mutation after a graph is built; §5 notes it
//     is single-writer by construction, so sequential pipelines need no
//     extra synchronisation, and a parallel C4 only needs to avoid two
//     goroutines writing the *same* edge concurrently (they never do: each
//     project contributes only its own outgoing edges).
//
// Deterministic iteration: Vertices() and Edges() always return results
// sorted by Path and by (Source,Target,Kind) respectively, which is what
// makes cycle discovery order (C3) and DOT emission (C7) reproducible
// across runs on the same input (§5).
package core
