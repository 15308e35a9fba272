package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/archscope/depscope/core"
)

// languageByExtension maps a project file's extension to the source
// language tag recorded on ProjectInfo.
var languageByExtension = map[string]string{
	".csproj": "C#",
	".vbproj": "VB.NET",
	".fsproj": "F#",
}

// LoadProject parses the .csproj-shaped XML read from r (located at path,
// used for relative-reference resolution and the returned identity) into a
// core.ProjectInfo. solutionName is supplied by the caller, since a bare
// project file carries no solution information of its own — it is typically
// known from whatever enumerated this project file (e.g. a .sln listing).
func LoadProject(r io.Reader, path, solutionName string) (core.ProjectInfo, []core.Warning, error) {
	var doc projectFile
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return core.ProjectInfo{}, nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}

	props := firstNonEmptyPropertyGroup(doc.PropertyGroup)
	framework := normalizeFramework(props.TargetFramework, props.TargetFrameworks, props.TargetFrameworkVersion)

	var warnings []core.Warning
	if framework == unknownFramework {
		warnings = append(warnings, core.Warning{
			Stage:   "loader",
			Project: path,
			Kind:    core.WarningAnalysisDegraded,
			Message: "no recognised target-framework element; TargetFramework set to \"unknown\"",
		})
	}

	name := props.AssemblyName
	if name == "" {
		name = baseNameWithoutExt(path)
	}

	dir := filepath.Dir(path)
	var references []core.Reference
	for _, ig := range doc.ItemGroup {
		for _, item := range ig.ProjectReference {
			if item.Include == "" {
				continue
			}
			targetPath := filepath.Clean(filepath.Join(dir, filepath.FromSlash(item.Include)))
			references = append(references, core.Reference{
				TargetName: baseNameWithoutExt(targetPath),
				Kind:       core.ProjectReferenceKind,
				TargetPath: targetPath,
			})
		}
		for _, item := range ig.PackageReference {
			if item.Include == "" {
				continue
			}
			references = append(references, core.Reference{
				TargetName: item.Include,
				Kind:       core.AssemblyReferenceKind,
			})
		}
		for _, item := range ig.Reference {
			if item.Include == "" {
				continue
			}
			references = append(references, core.Reference{
				TargetName: item.Include,
				Kind:       core.AssemblyReferenceKind,
			})
		}
	}

	info := core.ProjectInfo{
		Name:            name,
		FilePath:        path,
		TargetFramework: framework,
		Language:        languageOf(path),
		SolutionName:    solutionName,
		References:      references,
	}
	return info, warnings, nil
}

// LoadFile opens and parses the project file at path from disk.
func LoadFile(path, solutionName string) (core.ProjectInfo, []core.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.ProjectInfo{}, nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadProject(f, path, solutionName)
}

func languageOf(path string) string {
	if lang, ok := languageByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "unknown"
}

func baseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
