package scoring

import "github.com/archscope/depscope/core"

// couplingMetric computes §4.6a over every vertex of g: raw = 2*indegree +
// outdegree, normalised = 100*raw/maxRaw across all vertices (0 if
// maxRaw=0), clamped to [0,100].
func couplingMetric(g *core.Graph) map[string]float64 {
	vertices := g.Vertices()

	raw := make(map[string]int, len(vertices))
	maxRaw := 0
	for _, v := range vertices {
		r := 2*g.InDegree(v.Path) + g.OutDegree(v.Path)
		raw[v.Path] = r
		if r > maxRaw {
			maxRaw = r
		}
	}

	out := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		if maxRaw == 0 {
			out[v.Path] = 0
			continue
		}
		out[v.Path] = clamp(100*float64(raw[v.Path])/float64(maxRaw), 0, 100)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
