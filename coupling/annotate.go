package coupling

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/archscope/depscope/core"
)

// AnalyzeAll runs analyzer once per vertex in g, fanned out one goroutine
// per project bounded by GOMAXPROCS (golang.org/x/sync/errgroup per §5/§9),
// honouring ctx cancellation between projects. The returned map holds
// Signals only for projects analyzer could process; a project absent from
// it triggers the documented fallback in both ApplyCoupling (C4) and the
// Extraction Scorer (C6), and a warning is recorded for it here so the
// degradation is reported exactly once regardless of how many downstream
// stages consult the missing entry.
//
// Only ctx cancellation is returned as an error; analysis failures are
// reported as warnings, never as a fatal error (§4.4's fallback policy).
func AnalyzeAll(ctx context.Context, g *core.Graph, analyzer SemanticAnalyzer, log *logrus.Entry) (map[string]Signals, []core.Warning, error) {
	vertices := g.Vertices()

	var mu sync.Mutex
	signals := make(map[string]Signals, len(vertices))
	var warnings []core.Warning

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for _, v := range vertices {
		v := v
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s, err := analyzer.Analyze(gctx, v)
			if err != nil {
				if log != nil {
					log.WithFields(logrus.Fields{
						"stage":        "coupling",
						"project":      v.Name,
						"warning_kind": core.WarningAnalysisDegraded,
					}).Warn("semantic analysis unavailable, using fallback metrics")
				}
				mu.Lock()
				warnings = append(warnings, core.Warning{
					Stage:   "coupling",
					Project: v.Name,
					Kind:    core.WarningAnalysisDegraded,
					Message: fmt.Sprintf("semantic analysis unavailable: %v; metrics use documented fallback", err),
				})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			signals[v.Path] = s
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return signals, warnings, fmt.Errorf("coupling: analysis cancelled: %w", err)
	}

	return signals, warnings, nil
}

// ApplyCoupling overwrites every edge's default coupling (1/Weak) with the
// semantic weight in signals, per §4.4. Edges whose source has no entry in
// signals (analysis degraded or never attempted) are left at the default.
func ApplyCoupling(g *core.Graph, signals map[string]Signals) {
	for _, e := range g.Edges() {
		s, ok := signals[e.Source]
		if !ok {
			continue
		}
		target := g.Vertex(e.Target)
		if target == nil {
			continue
		}
		score := s.CallSitesByTargetAssembly[target.Name]
		if score <= 0 {
			score = 1
		}
		_ = g.SetCoupling(e.Source, e.Target, e.Kind, score)
	}
}
