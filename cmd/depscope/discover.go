package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/archscope/depscope/core"
	"github.com/archscope/depscope/loader"
)

// discoverProjects walks root for *.csproj files and loads each into a
// core.ProjectInfo via the default loader, tagging every discovered
// project with solutionName (the CLI's stand-in for .sln enumeration,
// since solution parsing is out of scope per SPEC_FULL.md §10).
func discoverProjects(root, solutionName string) ([]core.ProjectInfo, []core.Warning, error) {
	var projects []core.ProjectInfo
	var warnings []core.Warning

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csproj") {
			return nil
		}
		info, loadWarnings, err := loader.LoadFile(path, solutionName)
		if err != nil {
			return fmt.Errorf("discover: %w", err)
		}
		projects = append(projects, info)
		warnings = append(warnings, loadWarnings...)
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}
	return projects, warnings, nil
}
