package cycles

import (
	"sort"

	"github.com/archscope/depscope/core"
)

// detector holds Tarjan's algorithm state for one run, grounded on the
// standard index/lowlink/stack formulation (successor already on the stack
// tightens lowlink to the successor's index; successor not yet visited
// recurses first and tightens to the successor's resulting lowlink).
type detector struct {
	g *core.Graph

	index    int
	indices  map[string]int
	lowLinks map[string]int
	stack    []string
	inStack  map[string]bool

	components [][]string
}

// Detect runs Tarjan's SCC algorithm over g and returns every component of
// size ≥ 2 as a Cycle, numbered in discovery order (§4.3).
func Detect(g *core.Graph) []*Cycle {
	d := &detector{
		g:        g,
		indices:  make(map[string]int),
		lowLinks: make(map[string]int),
		inStack:  make(map[string]bool),
	}

	for _, v := range g.Vertices() {
		if _, visited := d.indices[v.Path]; !visited {
			d.strongConnect(v.Path)
		}
	}

	cycles := make([]*Cycle, 0, len(d.components))
	for i, component := range d.components {
		cycles = append(cycles, newCycle(g, i+1, component))
	}
	return cycles
}

func (d *detector) strongConnect(path string) {
	d.indices[path] = d.index
	d.lowLinks[path] = d.index
	d.index++

	d.stack = append(d.stack, path)
	d.inStack[path] = true

	for _, e := range d.g.OutEdges(path) {
		target := e.Target
		if _, visited := d.indices[target]; !visited {
			d.strongConnect(target)
			d.lowLinks[path] = min(d.lowLinks[path], d.lowLinks[target])
		} else if d.inStack[target] {
			d.lowLinks[path] = min(d.lowLinks[path], d.indices[target])
		}
	}

	if d.lowLinks[path] != d.indices[path] {
		return
	}

	var component []string
	for {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.inStack[top] = false
		component = append(component, top)
		if top == path {
			break
		}
	}

	if len(component) > 1 {
		sort.Strings(component)
		d.components = append(d.components, component)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// newCycle resolves a component's paths to Projects, sorted by path.
func newCycle(g *core.Graph, id int, paths []string) *Cycle {
	projects := make([]*core.Project, 0, len(paths))
	for _, p := range paths {
		if v := g.Vertex(p); v != nil {
			projects = append(projects, v)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Path < projects[j].Path })

	return &Cycle{
		ID:       id,
		Projects: projects,
		Size:     len(projects),
	}
}

// ComputeStatistics computes the §4.3 summary over the detected cycles and
// the total vertex count of the (filtered) graph they were detected on.
func ComputeStatistics(g *core.Graph, detected []*Cycle) Statistics {
	stats := Statistics{TotalCycles: len(detected)}

	distinct := make(map[string]struct{})
	for _, c := range detected {
		if c.Size > stats.LargestCycleSize {
			stats.LargestCycleSize = c.Size
		}
		for _, p := range c.Projects {
			distinct[p.Path] = struct{}{}
		}
	}
	stats.DistinctProjectsInCycles = len(distinct)

	total := g.VertexCount()
	if total > 0 {
		stats.ParticipationRate = 100 * float64(stats.DistinctProjectsInCycles) / float64(total)
	}

	return stats
}
