package emit

import (
	"strings"

	"github.com/archscope/depscope/core"
)

// writeLegends appends the §4.7 legend clusters to b: an Extraction
// Difficulty legend when scores are supplied, a Dependency Types legend
// when cycles and/or recommendations exist, and a Solutions legend when
// the graph spans multiple solutions. Legends always follow the main
// node/edge content.
func writeLegends(b *strings.Builder, in DOTInput) {
	clusterID := 0

	if len(in.Scores) > 0 {
		writeLegendCluster(b, &clusterID, "Extraction Difficulty", []string{
			"Lightgreen: Easy",
			"Yellow: Medium",
			"Lightcoral: Hard",
		})
	}

	if len(in.Cycles) > 0 || len(in.Recommendations) > 0 {
		writeLegendCluster(b, &clusterID, "Dependency Types", []string{
			"Red: Circular Dependencies",
			"Yellow: Suggested Break Points (Top 10)",
			"Blue: Cross-Solution Dependencies",
		})
	}

	solutions := distinctSolutions(in.Graph)
	if len(solutions) > 1 {
		writeLegendCluster(b, &clusterID, "Solutions", solutions)
	}
}

func writeLegendCluster(b *strings.Builder, clusterID *int, title string, rows []string) {
	data := struct {
		ID    int
		Title string
		Rows  []string
	}{ID: *clusterID, Title: title, Rows: rows}
	*clusterID++

	_ = legendClusterTemplate.Execute(b, data)
}

func distinctSolutions(g *core.Graph) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range g.Vertices() {
		if v.SolutionName == "" || seen[v.SolutionName] {
			continue
		}
		seen[v.SolutionName] = true
		out = append(out, v.SolutionName)
	}
	return out
}
