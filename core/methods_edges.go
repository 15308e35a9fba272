package core

import "sort"

// AddEdge inserts a directed edge source->target of the given kind, with
// the default coupling (1/Weak), unless one already exists for the same
// (source,target,kind) key, in which case AddEdge is a no-op and returns
// nil (idempotent re-insertion, per the teacher's "re-running a builder
// does not duplicate" guarantee).
//
// Both endpoints must already be registered vertices; AddEdge never
// materialises a vertex implicitly (the Graph Builder is responsible for
// that per §4.1).
//
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(source, target string, kind ReferenceKind) error {
	if source == target {
		return ErrSelfLoop
	}

	g.muVert.RLock()
	_, sOK := g.vertices[source]
	_, tOK := g.vertices[target]
	g.muVert.RUnlock()
	if !sOK || !tOK {
		return ErrVertexNotFound
	}

	key := edgeKey{source: source, target: target, kind: kind}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[key]; exists {
		return nil
	}

	e := &Edge{
		Source:           source,
		Target:           target,
		Kind:             kind,
		CouplingScore:    1,
		CouplingStrength: Weak,
	}
	g.edges[key] = e
	g.out[source] = append(g.out[source], e)
	g.in[target] = append(g.in[target], e)

	return nil
}

// HasEdge reports whether an edge (source,target,kind) exists. O(1).
func (g *Graph) HasEdge(source, target string, kind ReferenceKind) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[edgeKey{source: source, target: target, kind: kind}]
	return ok
}

// Edges returns all edges, sorted by (Source, Target, Kind) for
// deterministic iteration (§5's "DOT output is byte-for-byte
// deterministic" guarantee depends on this). O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// sortEdges sorts in place by (Source, Target, Kind).
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		return a.Kind < b.Kind
	})
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// OutEdges returns path's outgoing edges, sorted by (Target, Kind). O(d log d).
func (g *Graph) OutEdges(path string) []*Edge {
	g.muEdge.RLock()
	src := g.out[path]
	out := make([]*Edge, len(src))
	copy(out, src)
	g.muEdge.RUnlock()

	sortEdges(out)
	return out
}

// InEdges returns path's incoming edges, sorted by (Source, Kind). O(d log d).
func (g *Graph) InEdges(path string) []*Edge {
	g.muEdge.RLock()
	src := g.in[path]
	out := make([]*Edge, len(src))
	copy(out, src)
	g.muEdge.RUnlock()

	sortEdges(out)
	return out
}

// OutDegree returns len(OutEdges(path)) without allocating a copy. O(1).
func (g *Graph) OutDegree(path string) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.out[path])
}

// InDegree returns len(InEdges(path)) without allocating a copy. O(1).
func (g *Graph) InDegree(path string) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.in[path])
}

// RemoveEdge deletes the edge (source,target,kind) if present. Used by the
// Framework Filter (C2) to build a derived graph without mutating the
// original. O(d) to splice the adjacency slices.
func (g *Graph) RemoveEdge(source, target string, kind ReferenceKind) error {
	key := edgeKey{source: source, target: target, kind: kind}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	g.out[source] = spliceEdge(g.out[source], target, kind)
	g.in[target] = spliceEdge(g.in[target], source, kind)

	return nil
}

// spliceEdge removes the first edge matching (other, kind) from a slice
// addressed from either endpoint's perspective.
func spliceEdge(edges []*Edge, other string, kind ReferenceKind) []*Edge {
	for i, e := range edges {
		matches := (e.Target == other || e.Source == other) && e.Kind == kind
		if matches {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
