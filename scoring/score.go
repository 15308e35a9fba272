package scoring

import (
	"github.com/archscope/depscope/config"
	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/coupling"
)

// Score computes an ExtractionScore for every vertex in g, per §4.6.
// signals is the per-project Signals map coupling.AnalyzeAll produced; a
// project absent from it (semantic analysis degraded) uses the documented
// neutral fallbacks for complexity and API exposure. weights MUST already
// be validated (config.ScoringWeights.Validate) — Score does not
// re-validate them.
func Score(g *core.Graph, signals map[string]coupling.Signals, weights config.ScoringWeights) ([]ExtractionScore, Statistics) {
	couplingByPath := couplingMetric(g)

	vertices := g.Vertices()
	scores := make([]ExtractionScore, 0, len(vertices))
	var stats Statistics

	for _, v := range vertices {
		complexity := neutralComplexity
		apiExposure := neutralAPIExposure
		if s, ok := signals[v.Path]; ok {
			complexity = complexityScore(s.AvgCyclomaticComplexity)
			apiExposure = apiExposureScore(s.ExternalEndpointCount)
		}

		metrics := MetricBundle{
			Coupling:    couplingByPath[v.Path],
			Complexity:  complexity,
			TechDebt:    techDebtScore(v.TargetFramework),
			ExternalAPI: apiExposure,
		}

		final := clamp(
			weights.Coupling*metrics.Coupling+
				weights.Complexity*metrics.Complexity+
				weights.TechDebt*metrics.TechDebt+
				weights.ExternalExposure*metrics.ExternalAPI,
			0, 100,
		)
		category := CategorizeScore(final)

		switch category {
		case Easy:
			stats.Easy++
		case Medium:
			stats.Medium++
		case Hard:
			stats.Hard++
		}

		scores = append(scores, ExtractionScore{
			Project:    v,
			Metrics:    metrics,
			FinalScore: final,
			Category:   category,
		})
	}

	return scores, stats
}
