// Package filter implements the Framework Filter (C2): it produces a
// derived graph that retains every vertex of the input and drops edges
// whose target name matches a block pattern and no allow pattern, per §4.2.
package filter

import (
	"strings"

	"github.com/archscope/depscope/config"
	"github.com/archscope/depscope/core"
)

// Apply returns a new graph with the same vertices as g and only the edges
// that survive cfg's block/allow precedence. The input graph is never
// mutated (§4.2's "vertex count preserved, edge count decreases
// monotonically" invariant), and re-applying Apply with the same cfg to its
// own output is a fixed point (idempotence).
func Apply(g *core.Graph, cfg config.FilterConfig) *core.Graph {
	out := g.Clone()

	for _, e := range out.Edges() {
		target := out.Vertex(e.Target)
		if target == nil {
			continue
		}
		if shouldDrop(target.Name, cfg) {
			_ = out.RemoveEdge(e.Source, e.Target, e.Kind)
		}
	}

	return out
}

// shouldDrop reports whether a target name is blocked and not re-admitted by
// an allow pattern. Allow short-circuits to retain; then block drops;
// otherwise retain (§4.2's precedence rule).
func shouldDrop(targetName string, cfg config.FilterConfig) bool {
	if matchesAny(targetName, cfg.AllowList) {
		return false
	}
	return matchesAny(targetName, cfg.BlockList)
}

// matchesAny reports whether name matches any pattern in patterns, using
// the two-shape pattern language of §4.2: a trailing-`*` prefix glob
// ("Prefix.*") or an exact, case-insensitive name match.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if matchesPattern(name, p) {
			return true
		}
	}
	return false
}

func matchesPattern(name, pattern string) bool {
	name = strings.ToLower(name)
	pattern = strings.ToLower(pattern)

	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(name, prefix)
	}
	return name == pattern
}
