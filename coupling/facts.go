package coupling

import (
	"context"
	"errors"

	"github.com/archscope/depscope/core"
)

// CallSite is one occurrence of the cross-project constructs §4.4
// enumerates (invocation, constructor, property/indexer access, operator or
// conversion call) whose resolved symbol lives in a different assembly than
// the one making the call.
type CallSite struct {
	TargetAssembly string
}

// Unit is one executable code unit (method, constructor, property,
// local function) reduced to the single number the complexity metric
// needs: its McCabe decision-point count. DecisionPoints excludes the
// implicit "+1" every unit starts at (§4.6b); ComplexityOf adds it back.
type Unit struct {
	DecisionPoints int
}

// ComplexityOf returns this unit's McCabe cyclomatic complexity.
func (u Unit) ComplexityOf() int { return 1 + u.DecisionPoints }

// ProjectFacts is the pre-extracted, per-project input to FactAnalyzer: a
// stand-in for what a live compiler frontend would derive from source. A
// FactStore (or any equivalent map) supplies one of these per project
// that can be analyzed; a project absent from the store triggers §4.4's
// fallback path.
type ProjectFacts struct {
	AssemblyName          string
	CallSites             []CallSite
	Units                 []Unit
	ExternalEndpointCount int
}

// FactStore supplies ProjectFacts by project path. It is intentionally
// minimal so callers can back it with an in-memory map (tests, small runs)
// or a future on-disk cache without FactAnalyzer caring which.
type FactStore interface {
	Lookup(projectPath string) (ProjectFacts, bool)
}

// MapFactStore is the simplest FactStore: an in-memory map keyed by
// project path.
type MapFactStore map[string]ProjectFacts

// Lookup implements FactStore.
func (m MapFactStore) Lookup(projectPath string) (ProjectFacts, bool) {
	f, ok := m[projectPath]
	return f, ok
}

// ErrFactsUnavailable is returned by FactAnalyzer.Analyze when its store has
// no facts for the requested project, triggering the §4.4 fallback policy
// in the caller (AnalyzeAll).
var ErrFactsUnavailable = errors.New("coupling: no facts available for project")

// FactAnalyzer is the concrete SemanticAnalyzer shipped in place of a live
// compiler frontend (§1, §10): it aggregates pre-extracted facts into the
// Signals bundle C4 and C6 need.
type FactAnalyzer struct {
	Store FactStore
}

// NewFactAnalyzer constructs a FactAnalyzer over store.
func NewFactAnalyzer(store FactStore) *FactAnalyzer {
	return &FactAnalyzer{Store: store}
}

// Analyze implements SemanticAnalyzer: it aggregates the project's
// ProjectFacts into call-site counts per target assembly, the mean
// cyclomatic complexity across its units, and its external-endpoint count.
// Returns ErrFactsUnavailable when the store has no facts for the project,
// per §4.4's "semantic resolution is unavailable" fallback trigger.
func (a *FactAnalyzer) Analyze(ctx context.Context, project *core.Project) (Signals, error) {
	if err := ctx.Err(); err != nil {
		return Signals{}, err
	}

	facts, ok := a.Store.Lookup(project.Path)
	if !ok {
		return Signals{}, ErrFactsUnavailable
	}

	byTarget := make(map[string]int, len(facts.CallSites))
	for _, cs := range facts.CallSites {
		byTarget[cs.TargetAssembly]++
	}

	var avgComplexity float64
	if len(facts.Units) > 0 {
		sum := 0
		for _, u := range facts.Units {
			sum += u.ComplexityOf()
		}
		avgComplexity = float64(sum) / float64(len(facts.Units))
	}

	return Signals{
		CallSitesByTargetAssembly: byTarget,
		AvgCyclomaticComplexity:   avgComplexity,
		ExternalEndpointCount:     facts.ExternalEndpointCount,
	}, nil
}
