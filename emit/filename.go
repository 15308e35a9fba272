package emit

import (
	"regexp"

	"github.com/archscope/depscope/core"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// DOTFilename implements §4.7's filename rule: a single-solution input
// produces "{SolutionName}-dependencies.dot"; a multi-solution input
// produces "Ecosystem-dependencies.dot". Unsafe filesystem characters in
// the solution name are replaced with "_".
func DOTFilename(g *core.Graph) string {
	solutions := distinctSolutions(g)
	if len(solutions) != 1 {
		return "Ecosystem-dependencies.dot"
	}
	return unsafeFilenameChars.ReplaceAllString(solutions[0], "_") + "-dependencies.dot"
}
