package scoring

import "github.com/archscope/depscope/core"

// Category buckets a final extraction score per §3.
type Category string

const (
	Easy   Category = "Easy"
	Medium Category = "Medium"
	Hard   Category = "Hard"
)

// CategorizeScore maps a final score in [0,100] to its Category: Easy ≤33,
// Medium 34..66, Hard ≥67.
func CategorizeScore(final float64) Category {
	switch {
	case final <= 33:
		return Easy
	case final <= 66:
		return Medium
	default:
		return Hard
	}
}

// MetricBundle carries one project's four raw-to-normalised metrics (§3).
type MetricBundle struct {
	Coupling    float64
	Complexity  float64
	TechDebt    float64
	ExternalAPI float64
}

// ExtractionScore is one project's combined result (§3).
type ExtractionScore struct {
	Project    *core.Project
	Metrics    MetricBundle
	FinalScore float64
	Category   Category
}

// Statistics is the C6 ranking view's bucket counts (§4.6).
type Statistics struct {
	Easy, Medium, Hard int
}

// Total returns Easy+Medium+Hard, which must equal the number of scored
// projects (§8 invariant 4).
func (s Statistics) Total() int { return s.Easy + s.Medium + s.Hard }
