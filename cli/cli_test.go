package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cyber-savior/cpsav/savtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSaves(t *testing.T) (good string, bad string) {
	dir := t.TempDir()
	save := savtest.Builder{
		Payload: []byte("hello, world"),
		Nodes: []savtest.Node{
			{Name: "root", NextIndex: -1, ChildIndex: 1, DataOffset: 0, DataSize: 12},
			{Name: "greeting", NextIndex: -1, ChildIndex: -1, DataOffset: 0, DataSize: 5},
		},
	}.Build()
	good = filepath.Join(dir, "sav.dat")
	bad = filepath.Join(dir, "broken.dat")
	require.NoError(t, os.WriteFile(good, save, 0644))
	require.NoError(t, os.WriteFile(bad, save[:len(save)-3], 0644))
	return good, bad
}

func TestStartReporting(t *testing.T) {
	good, _ := writeSaves(t)
	w := &bytes.Buffer{}

	require.NoError(t, StartReporting(w, []string{good}, false))
	assert.Equal(
		t,
		"root: 7 own bytes, 12 total bytes\ngreeting: 5 own bytes, 5 total bytes\n",
		w.String(),
	)
}

func TestStartReporting_Failures(t *testing.T) {
	good, bad := writeSaves(t)
	missing := filepath.Join(filepath.Dir(good), "missing.dat")
	w := &bytes.Buffer{}

	err := StartReporting(w, []string{bad, good, missing}, false)
	assert.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, w.String(), "== "+bad+" ==\nCould not load save: not a save file\n")
	assert.Contains(t, w.String(), "== "+good+" ==\nroot: 7 own bytes")
	assert.Contains(t, w.String(), "Could not read file")
}

func TestStartReporting_JSON(t *testing.T) {
	good, bad := writeSaves(t)
	w := &bytes.Buffer{}

	err := StartReporting(w, []string{good, bad}, true)
	assert.ErrorIs(t, err, ErrFailed)

	var result map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Bytes(), &result))
	assert.Equal(t, float64(2), result[good]["num_nodes"])
	assert.Equal(t, "bad_signature", result[bad]["error"])
}

func TestStartTree(t *testing.T) {
	good, bad := writeSaves(t)
	w := &bytes.Buffer{}

	require.NoError(t, StartTree(w, good))
	assert.Equal(
		t,
		"root: 7 own bytes, 12 total bytes\n  greeting: 5 own bytes, 5 total bytes\n",
		w.String(),
	)
	assert.EqualError(t, StartTree(w, bad), "Could not load save: not a save file")
}

func TestStartDumping(t *testing.T) {
	good, _ := writeSaves(t)
	w := &bytes.Buffer{}

	require.NoError(t, StartDumping(w, good, 1))
	assert.Equal(
		t,
		"greeting: 5 bytes at offset 0\n"+
			"00000000  68 65 6c 6c 6f                                    |hello|\n",
		w.String(),
	)

	assert.Error(t, StartDumping(w, good, 2))
}

func TestRun(t *testing.T) {
	good, bad := writeSaves(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := Run(Args{Report: &ReportCmd{Files: []string{good}}}, stdout, stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())

	code = Run(Args{Tree: &TreeCmd{File: bad}}, stdout, stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Could not load save")

	stderr.Reset()
	code = Run(Args{Report: &ReportCmd{Files: []string{bad}}}, stdout, stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr.String(), "report failures are already on stdout")
}
