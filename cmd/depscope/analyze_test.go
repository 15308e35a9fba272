package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRunAnalyze_EndToEndOverDiscoveredProjects(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "A.csproj"), []byte(sampleCsproj), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "B.csproj"), []byte(sampleCsproj), 0o644))

	out := t.TempDir()
	log := logrus.New()
	log.SetOutput(os.Stderr)

	err := runAnalyze(context.Background(), log, analyzeOptions{
		dir:      root,
		solution: "TestSolution",
		out:      out,
	})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(out, "TestSolution-dependencies.dot"))
	require.FileExists(t, filepath.Join(out, "extraction-scores.csv"))
	require.FileExists(t, filepath.Join(out, "cycles.csv"))
	require.FileExists(t, filepath.Join(out, "dependency-matrix.csv"))
}

func TestRunAnalyze_NoProjectsIsAnError(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	log := logrus.New()

	err := runAnalyze(context.Background(), log, analyzeOptions{dir: root, out: out})
	require.Error(t, err)
}
