package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/archscope/depscope/core"
)

const methodBuildGraph = "BuildGraph"

// syntheticNamespace namespaces UUIDv5-style identifiers minted for
// unresolved assembly references, so the same assembly name always
// materialises the same synthetic vertex within and across runs.
var syntheticNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("depscope.builder.synthetic"))

// identityIndex resolves Reference targets to vertex paths, per §4.1's
// "build an identity index keyed by both absolute path and by name" rule.
type identityIndex struct {
	byPath map[string]*core.ProjectInfo
	byName map[string][]*core.ProjectInfo
}

func newIdentityIndex(projects []core.ProjectInfo) *identityIndex {
	idx := &identityIndex{
		byPath: make(map[string]*core.ProjectInfo, len(projects)),
		byName: make(map[string][]*core.ProjectInfo, len(projects)),
	}
	for i := range projects {
		p := &projects[i]
		if _, exists := idx.byPath[p.FilePath]; !exists {
			idx.byPath[p.FilePath] = p
		}
		idx.byName[p.Name] = append(idx.byName[p.Name], p)
	}
	return idx
}

func (idx *identityIndex) resolveByPath(path string) (*core.ProjectInfo, bool) {
	p, ok := idx.byPath[path]
	return p, ok
}

func (idx *identityIndex) resolveByName(name string) (*core.ProjectInfo, bool) {
	candidates := idx.byName[name]
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[0], true
}

// BuildGraph turns projects into a typed core.Graph, resolving every
// declared Reference per §4.1. Unresolved references never fail the build;
// they are returned as warnings. The hard errors are a ProjectInfo with an
// empty Name and two ProjectInfo records disagreeing about the project that
// owns a canonical path.
func BuildGraph(projects []core.ProjectInfo) (*core.Graph, []core.Warning, error) {
	g := core.NewGraph()
	idx := newIdentityIndex(projects)
	var warnings []core.Warning

	for i := range projects {
		p := &projects[i]
		if p.Name == "" {
			return nil, warnings, builderErrorf(methodBuildGraph, "project at %q: %w", p.FilePath, ErrEmptyProjectName)
		}
		if err := addVertex(g, p); err != nil {
			return nil, warnings, builderErrorf(methodBuildGraph, "project %q: %w", p.FilePath, err)
		}
	}

	for i := range projects {
		p := &projects[i]
		for _, ref := range p.References {
			w := resolveReference(g, idx, p, ref)
			if w != nil {
				warnings = append(warnings, *w)
			}
		}
	}

	return g, warnings, nil
}

// addVertex registers p's vertex, surfacing ErrConflictingIdentity when a
// previously-seen, *different* project already claims p.FilePath. Per
// §4.1.4, a project re-encountered from a second solution is not a
// conflict: it collapses to the same vertex and keeps the first
// SolutionName.
func addVertex(g *core.Graph, p *core.ProjectInfo) error {
	if existing := g.Vertex(p.FilePath); existing != nil {
		if existing.Name != p.Name {
			return fmt.Errorf("%w: %s", ErrConflictingIdentity, p.FilePath)
		}
		return nil
	}
	return g.AddVertex(&core.Project{
		Path:            p.FilePath,
		Name:            p.Name,
		TargetFramework: p.TargetFramework,
		Language:        p.Language,
		SolutionName:    p.SolutionName,
	})
}

// resolveReference resolves a single Reference to a target vertex and adds
// the edge, returning a Warning when resolution falls back to a synthetic
// vertex or fails outright. Never returns a hard error: per §4.1, unresolved
// references are reported, not fatal.
func resolveReference(g *core.Graph, idx *identityIndex, source *core.ProjectInfo, ref core.Reference) *core.Warning {
	targetPath, ok := resolveTargetPath(idx, ref)
	if !ok {
		targetPath = materializeSynthetic(g, ref)
	}

	if err := g.AddEdge(source.FilePath, targetPath, ref.Kind); err != nil {
		return &core.Warning{
			Stage:   "builder",
			Project: source.Name,
			Kind:    core.WarningUnresolvedReference,
			Message: fmt.Sprintf("could not link reference to %q: %v", ref.TargetName, err),
		}
	}

	if !ok {
		return &core.Warning{
			Stage:   "builder",
			Project: source.Name,
			Kind:    core.WarningUnresolvedReference,
			Message: fmt.Sprintf("reference %q resolved to a synthetic vertex", ref.TargetName),
		}
	}
	return nil
}

// resolveTargetPath implements §4.1's per-kind resolution order: a
// ProjectReference prefers a path match and falls back to a name match; an
// AssemblyReference matches by name only.
func resolveTargetPath(idx *identityIndex, ref core.Reference) (string, bool) {
	switch ref.Kind {
	case core.ProjectReferenceKind:
		if ref.TargetPath != "" {
			if p, ok := idx.resolveByPath(ref.TargetPath); ok {
				return p.FilePath, true
			}
		}
		if p, ok := idx.resolveByName(ref.TargetName); ok {
			return p.FilePath, true
		}
	case core.AssemblyReferenceKind:
		if p, ok := idx.resolveByName(ref.TargetName); ok {
			return p.FilePath, true
		}
	}
	return "", false
}

// materializeSynthetic creates (or reuses) a synthetic vertex for an
// unresolved reference target, labelled by the assembly/project name, per
// §4.1.3. The vertex path is a deterministic UUIDv5 derived from the name
// so repeated unresolved references to the same name collapse to one
// vertex within a run.
func materializeSynthetic(g *core.Graph, ref core.Reference) string {
	path := "synthetic://" + uuid.NewSHA1(syntheticNamespace, []byte(ref.TargetName)).String()
	if g.HasVertex(path) {
		return path
	}
	_ = g.AddVertex(&core.Project{
		Path:      path,
		Name:      ref.TargetName,
		Synthetic: true,
	})
	return path
}
