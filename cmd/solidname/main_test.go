package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/solidname/internal/host"
)

const boardSnapshot = `group: Solids
solids:
  - name: Body1
    bbox: [-50, -50, 0, 50, 50, 1.6]
  - name: Body2
    bbox: [-20, -20, 1.6, 20, 20, 4.6]
  - name: Body3
    parent: OpenCASCADESTEPtranslator8
    bbox: [60, 0, 0, 80, 20, 0.035]
  - name: Body4
    parent: OpenCASCADESTEPtranslator8
`

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func loadNames(t *testing.T, path string) []string {
	t.Helper()
	s, err := host.LoadSnapshot(path)
	require.NoError(t, err)
	return s.Names()
}

func TestRun_RenameWritesSnapshot(t *testing.T) {
	path := writeSnapshot(t, boardSnapshot)

	require.Equal(t, 0, run([]string{"rename", path, "--no-color"}))
	assert.Equal(t, []string{"Substrate_Primary", "Package_Primary", "Conductive_01", "Imported_01"}, loadNames(t, path))

	// A second run finds nothing to do.
	require.Equal(t, 0, run([]string{"rename", path, "--no-color"}))
	assert.Equal(t, []string{"Substrate_Primary", "Package_Primary", "Conductive_01", "Imported_01"}, loadNames(t, path))
}

func TestRun_DryRunLeavesSnapshot(t *testing.T) {
	path := writeSnapshot(t, boardSnapshot)

	require.Equal(t, 0, run([]string{"rename", path, "--dry-run", "--no-color"}))
	assert.Equal(t, []string{"Body1", "Body2", "Body3", "Body4"}, loadNames(t, path))
}

func TestRun_RenameFailureExitsNonZero(t *testing.T) {
	path := writeSnapshot(t, `solids:
  - name: Body1
    bbox: [0, 0, 0, 100, 80, 1.6]
    readonly: true
`)
	assert.Equal(t, 1, run([]string{"rename", path, "--no-color"}))
	assert.Equal(t, []string{"Body1"}, loadNames(t, path))
}

func TestRun_Group(t *testing.T) {
	path := writeSnapshot(t, boardSnapshot)

	require.Equal(t, 0, run([]string{"group", path, "--prefix", "OpenCASCADESTEPtranslator8=PCB", "--no-color"}))
	assert.Equal(t, []string{"Body1", "Body2", "PCB_01", "PCB_02"}, loadNames(t, path))
}

func TestRun_Check(t *testing.T) {
	path := writeSnapshot(t, boardSnapshot)
	// Body4 has no bbox.
	assert.Equal(t, 1, run([]string{"check", path, "--no-color"}))

	clean := writeSnapshot(t, "solids:\n  - name: Body1\n    bbox: [0, 0, 0, 100, 80, 1.6]\n")
	assert.Equal(t, 0, run([]string{"check", clean, "--no-color"}))
}

func TestRun_BadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no snapshot", []string{"rename"}},
		{"missing file", []string{"rename", filepath.Join(t.TempDir(), "nope.yaml"), "--no-color"}},
		{"bad threshold", []string{"rename", "x.yaml", "--substrate-min", "3", "--substrate-max", "2"}},
		{"bad prefix", []string{"group", "x.yaml", "--prefix", "noequals"}},
		{"unknown command", []string{"frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, run(tt.args))
		})
	}
}

func TestPlanCmd_PrintsTable(t *testing.T) {
	path := writeSnapshot(t, boardSnapshot)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"plan", path, "--no-color"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Substrate_Primary")
	assert.Contains(t, out.String(), "Conductive_01")
	assert.Equal(t, []string{"Body1", "Body2", "Body3", "Body4"}, loadNames(t, path))
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "solidname version: "+version)
}
