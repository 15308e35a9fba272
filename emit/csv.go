package emit

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/cycles"
	"github.com/archscope/depscope/recommend"
	"github.com/archscope/depscope/scoring"
)

// newWriter returns a CSV writer configured for §6's "UTF-8, CRLF line
// endings" output contract.
func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

// WriteExtractionScoresCSV writes extraction-scores.csv: one row per
// project with all four normalised scores, the final score, and category.
func WriteExtractionScoresCSV(w io.Writer, scores []scoring.ExtractionScore) error {
	cw := newWriter(w)
	defer cw.Flush()

	header := []string{"Project", "Coupling", "Complexity", "TechDebt", "ExternalAPI", "FinalScore", "Category"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("emit: write extraction-scores header: %w", err)
	}

	for _, s := range scores {
		row := []string{
			s.Project.Name,
			formatScore(s.Metrics.Coupling),
			formatScore(s.Metrics.Complexity),
			formatScore(s.Metrics.TechDebt),
			formatScore(s.Metrics.ExternalAPI),
			formatScore(s.FinalScore),
			string(s.Category),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("emit: write extraction-scores row for %s: %w", s.Project.Name, err)
		}
	}
	return cw.Error()
}

// WriteCyclesCSV writes cycles.csv: one row per cycle with id, size, member
// projects, weak score, and the top suggested break for that cycle (the
// lowest-ranked recommendation whose CycleID matches, if any).
func WriteCyclesCSV(w io.Writer, detected []*cycles.Cycle, recommendations []recommend.BreakSuggestion) error {
	cw := newWriter(w)
	defer cw.Flush()

	header := []string{"CycleID", "Size", "Members", "WeakCouplingScore", "TopSuggestedBreak"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("emit: write cycles header: %w", err)
	}

	topBreakByCycle := make(map[int]string)
	for _, r := range recommendations {
		if _, exists := topBreakByCycle[r.CycleID]; !exists {
			topBreakByCycle[r.CycleID] = fmt.Sprintf("%s->%s", r.SourceProject, r.TargetProject)
		}
	}

	for _, c := range detected {
		names := make([]string, len(c.Projects))
		for i, p := range c.Projects {
			names[i] = p.Name
		}
		row := []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Size),
			strings.Join(names, "; "),
			strconv.Itoa(c.WeakCouplingScore),
			topBreakByCycle[c.ID],
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("emit: write cycles row for cycle %d: %w", c.ID, err)
		}
	}
	return cw.Error()
}

// WriteDependencyMatrixCSV writes dependency-matrix.csv: project × project,
// 0/1, row = source, column = target.
func WriteDependencyMatrixCSV(w io.Writer, g *core.Graph) error {
	cw := newWriter(w)
	defer cw.Flush()

	vertices := g.Vertices()
	header := make([]string, len(vertices)+1)
	header[0] = ""
	for i, v := range vertices {
		header[i+1] = v.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("emit: write dependency-matrix header: %w", err)
	}

	for _, source := range vertices {
		row := make([]string, len(vertices)+1)
		row[0] = source.Name
		for i, target := range vertices {
			if hasAnyEdge(g, source.Path, target.Path) {
				row[i+1] = "1"
			} else {
				row[i+1] = "0"
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("emit: write dependency-matrix row for %s: %w", source.Name, err)
		}
	}
	return cw.Error()
}

func hasAnyEdge(g *core.Graph, source, target string) bool {
	for _, e := range g.OutEdges(source) {
		if e.Target == target {
			return true
		}
	}
	return false
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
