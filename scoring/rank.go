package scoring

import "sort"

// RankedCandidates sorts scores by FinalScore ascending (§4.6's ranking
// view) and reports the top-ten Easy and bottom-ten Hard highlight sets.
// scores is sorted in place and also returned for convenience.
func RankedCandidates(scores []ExtractionScore) (sorted []ExtractionScore, topEasy, bottomHard []ExtractionScore) {
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].FinalScore < scores[j].FinalScore })

	for _, s := range scores {
		if s.Category == Easy && len(topEasy) < 10 {
			topEasy = append(topEasy, s)
		}
	}
	for i := len(scores) - 1; i >= 0 && len(bottomHard) < 10; i-- {
		if scores[i].Category == Hard {
			bottomHard = append(bottomHard, scores[i])
		}
	}

	return scores, topEasy, bottomHard
}
