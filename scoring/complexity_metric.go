package scoring

// neutralComplexity is the fallback score when semantic analysis is
// unavailable for a project (§4.6b).
const neutralComplexity float64 = 50

// complexityScore applies the §4.6b piecewise-linear normalisation to a
// project's average McCabe cyclomatic complexity across its executable
// units, approximating github.com/fzipp/gocyclo's decision-point inventory
// over pre-extracted facts rather than live AST (§10).
func complexityScore(avg float64) float64 {
	switch {
	case avg <= 0:
		return 0
	case avg <= 7:
		return (avg / 7) * 33
	case avg <= 15:
		return 33 + ((avg-7)/8)*33
	case avg <= 25:
		return 66 + ((avg-15)/10)*24
	default:
		return clamp(90+(avg-25), 0, 100)
	}
}
