package core

// Clone returns a deep copy of the graph: every Project and Edge is
// duplicated so the clone can be mutated (e.g. by the Framework Filter,
// C2) without affecting the original, per §3's "every record is created by
// one stage and is immutable thereafter" lifecycle rule.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	out := NewGraph()

	for _, p := range g.Vertices() {
		cp := *p
		_ = out.AddVertex(&cp) // vertices already validated by the source graph
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.Source, e.Target, e.Kind)
		// AddEdge resets coupling to the default; restore the source's
		// annotation so Clone is a faithful copy at any pipeline stage.
		_ = out.SetCoupling(e.Source, e.Target, e.Kind, e.CouplingScore)
	}

	return out
}

// SetCoupling overwrites an edge's CouplingScore and derived
// CouplingStrength. This is the single mutation point used by the Coupling
// Annotator (C4); per §5 it is write-once per edge during a run.
//
// Complexity: O(1).
func (g *Graph) SetCoupling(source, target string, kind ReferenceKind, score int) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[edgeKey{source: source, target: target, kind: kind}]
	if !ok {
		return ErrEdgeNotFound
	}
	e.CouplingScore = score
	e.CouplingStrength = ClassifyCoupling(score)

	return nil
}
