package cycles

import "github.com/archscope/depscope/core"

// Cycle is a strongly connected component of size ≥ 2, per §3. ID is
// 1-based, assigned in discovery order. Projects is sorted by Path so
// downstream stages (weak-edge collection, DOT legends) iterate
// deterministically. WeakCouplingScore and WeakEdges are populated by the
// Weak-Edge & Recommendation Engine (C5); they are zero/nil until then.
type Cycle struct {
	ID                int
	Projects          []*core.Project
	Size              int
	WeakCouplingScore int
	WeakEdges         []*core.Edge
}

// Members returns the set of Project.Path values in the cycle, used for
// O(1) "both endpoints in this cycle" membership tests by the Weak-Edge &
// Recommendation Engine (C5).
func (c *Cycle) Members() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Projects))
	for _, p := range c.Projects {
		set[p.Path] = struct{}{}
	}
	return set
}

// Statistics summarises the cycle list for a run, per §4.3.
type Statistics struct {
	TotalCycles              int
	LargestCycleSize         int
	DistinctProjectsInCycles int
	ParticipationRate        float64
}
