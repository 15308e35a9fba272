// Package builder implements the Graph Builder (C1): it turns an ordered
// collection of core.ProjectInfo records into a typed core.Graph, resolving
// each declared Reference to a vertex identity per the rules below.
//
// Resolution rules:
//
//   - An identity index is built keyed by both absolute path and by name.
//   - A ProjectReference prefers a path match, falling back to a name match.
//   - An AssemblyReference matches by name only; when unresolved, a synthetic
//     vertex is materialised and labelled with the assembly name so the
//     reference is not silently dropped (it may later be filtered by C2).
//   - Two ProjectInfo records sharing a canonical path collapse to one
//     vertex; its SolutionName records the first solution that introduced
//     it, which is what makes the builder's output deterministic across
//     runs on the same (possibly reordered) input.
//
// Unresolved references never fail the build; they are reported as
// Warnings. The hard failures are a ProjectInfo with an empty Name —
// ErrEmptyProjectName — and two distinct ProjectInfo records disagreeing
// about the project that owns a canonical path — ErrConflictingIdentity.
package builder
