// Package loader is the default, swappable manifest loader described in
// SPEC_FULL.md §10: it reads .csproj-shaped XML into core.ProjectInfo
// records. It is a supplementary convenience, not part of the scored
// pipeline core — callers may substitute any other source of
// []core.ProjectInfo (MSBuild evaluation, a cached index, a test fixture)
// without touching builder, filter, cycles, coupling, recommend, scoring,
// or emit.
//
// Parsing is deliberately forgiving: a project file with no recognisable
// target-framework element yields TargetFramework "unknown" rather than an
// error, and an ItemGroup the loader doesn't understand is skipped rather
// than rejected. Hard failures are reserved for inputs that cannot be
// interpreted as XML at all.
package loader
