package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABakker30/ballpuzzle3/snapshot"
)

func TestWriteWorldJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	doc := snapshot.BuildWorldDoc("Roof", "/containers/Roof.json", 0.5,
		[]string{"A"},
		[]snapshot.PiecePlacement{{ID: "A", CellsIJK: [][3]int{{0, 0, 0}, {1, 1, 0}, {1, 0, 1}, {0, 1, 1}}}},
		1, "cid", "sidstate", "sidroute", 1700000000)

	path := filepath.Join(dir, "Roof.world.json")
	require.NoError(t, snapshot.WriteWorldJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tetra_spheres_solution/1.0")
	assert.Contains(t, string(data), "sidstate")
}

func TestWriteWorldLayersEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, snapshot.WriteWorldLayers(path, nil, nil, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[empty]\n", string(data))
}

func TestWriteWorldLayersSingleCell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layers.txt")
	placements := []snapshot.PiecePlacement{{ID: "A", CellsIJK: [][3]int{{0, 0, 0}}}}
	require.NoError(t, snapshot.WriteWorldLayers(path, placements, []string{"timestamp"}, map[string]string{"timestamp": "123"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "A")
	assert.Contains(t, string(data), "timestamp: 123")
}

func TestProgressWriterEmit(t *testing.T) {
	dir := t.TempDir()
	w := snapshot.NewProgressWriter(filepath.Join(dir, "progress.jsonl"), filepath.Join(dir, "progress.json"))
	require.NoError(t, w.Emit(snapshot.Event{Event: "progress", Run: 1, Placed: 2, Total: 4}))
	require.NoError(t, w.Emit(snapshot.Event{Event: "progress", Run: 1, Placed: 3, Total: 4}))

	stream, err := os.ReadFile(filepath.Join(dir, "progress.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 2, len(splitLines(string(stream))))

	summary, err := os.ReadFile(filepath.Join(dir, "progress.json"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), `"placed":3`)
}

func TestProgressWriterEmitControl(t *testing.T) {
	dir := t.TempDir()
	w := snapshot.NewProgressWriter(filepath.Join(dir, "progress.jsonl"), filepath.Join(dir, "progress.json"))
	require.NoError(t, w.EmitControl(snapshot.ControlEvent{Event: "paused", Run: 1, Seed: 42, TS: 1700000000.5}))

	stream, err := os.ReadFile(filepath.Join(dir, "progress.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(stream), `"event":"paused"`)
	assert.Contains(t, string(stream), `"ts":1700000000.5`)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
