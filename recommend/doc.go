// Package recommend implements the Weak-Edge & Recommendation Engine (C5):
// for every detected cycle it finds the minimum-coupling edges within the
// cycle, then globally ranks the flattened weak-edge list into
// BreakSuggestions, per §4.5.
package recommend
