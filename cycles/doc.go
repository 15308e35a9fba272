// Package cycles implements the Cycle Detector (C3): Tarjan's
// strongly-connected-components algorithm over a filtered core.Graph,
// keeping components of size ≥ 2 (a single vertex without a self-loop is
// not a cycle), plus the summary Statistics of §4.3.
//
// Discovery order is made deterministic by visiting vertices in
// project-path sort order (core.Graph.Vertices already returns them sorted)
// and by walking each vertex's outgoing edges in (target,kind) sort order
// (core.Graph.OutEdges is likewise sorted); Cycle.ID is assigned in DFS
// discovery order of the SCC roots, so the same graph always yields the
// same cycle numbering.
package cycles
