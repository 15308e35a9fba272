package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidateConfigCmd_RejectsInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ScoringWeights:\n  Coupling: 2.0\n"), 0o644))

	cmd := newValidateConfigCmd()
	cmd.SetArgs([]string{"--config", path})
	require.Error(t, cmd.Execute())
}

func TestNewValidateConfigCmd_AcceptsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("FrameworkFilters:\n  BlockList: [\"Microsoft.*\"]\n"), 0o644))

	cmd := newValidateConfigCmd()
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())
}
