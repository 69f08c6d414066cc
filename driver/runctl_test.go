package driver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunControllerCreatesFileWithStateRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runctl.json")

	rc, err := newRunController(path)
	require.NoError(t, err)
	assert.Equal(t, ctlRun, rc.poll())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"run"`)
}

func TestRunControllerPollReflectsFileChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runctl.json")

	rc, err := newRunController(path)
	require.NoError(t, err)
	require.Equal(t, ctlRun, rc.poll())

	require.NoError(t, os.WriteFile(path, []byte(`{"state":"pause","ts":1}`), 0o644))
	// Ensure mtime advances on filesystems with coarse timestamp resolution.
	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
	assert.Equal(t, ctlPause, rc.poll())

	require.NoError(t, os.WriteFile(path, []byte(`{"state":"stop","ts":2}`), 0o644))
	future = future.Add(time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
	assert.Equal(t, ctlStop, rc.poll())
}

func TestResolveRunControlPathPrecedence(t *testing.T) {
	assert.Equal(t, "/explicit.json", resolveRunControlPath("/explicit.json", "/logs"))
	assert.Equal(t, filepath.Join("/logs", "runctl.json"), resolveRunControlPath("", "/logs"))

	t.Setenv("BALLPUZZLE_RUNCTL_PATH", "/env.json")
	assert.Equal(t, "/env.json", resolveRunControlPath("", "/logs"))
	assert.Equal(t, "/explicit.json", resolveRunControlPath("/explicit.json", "/logs"))
}
