package driver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// controlState is the run-control file's "state" field.
type controlState string

const (
	ctlRun   controlState = "run"
	ctlPause controlState = "pause"
	ctlStop  controlState = "stop"
)

// runControlDoc is the on-disk shape of the run-control file: do not add
// fields without versioning the schema.
type runControlDoc struct {
	State controlState `json:"state"`
	TS    float64      `json:"ts"`
}

// runController polls a JSON run-control file cheaply: it caches the file's
// mtime and only re-parses the JSON on a change.
type runController struct {
	path      string
	lastMod   time.Time
	cached    controlState
	neverRead bool
}

// resolveRunControlPath applies the default/override chain: an explicit
// Options.RunControlPath wins, then the BALLPUZZLE_RUNCTL_PATH environment
// variable, then "<logsDir>/runctl.json".
func resolveRunControlPath(explicit, logsDir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("BALLPUZZLE_RUNCTL_PATH"); env != "" {
		return env
	}
	return filepath.Join(logsDir, "runctl.json")
}

// newRunController creates the run-control file with state=run if it does
// not already exist.
func newRunController(path string) (*runController, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		doc := runControlDoc{State: ctlRun, TS: 0}
		data, merr := json.Marshal(doc)
		if merr != nil {
			return nil, merr
		}
		if werr := os.WriteFile(path, data, 0o644); werr != nil {
			return nil, werr
		}
	}
	return &runController{path: path, cached: ctlRun, neverRead: true}, nil
}

// poll returns the current control state, re-reading the file only when its
// mtime has changed since the last poll.
func (c *runController) poll() controlState {
	info, err := os.Stat(c.path)
	if err != nil {
		return c.cached
	}
	if !c.neverRead && info.ModTime().Equal(c.lastMod) {
		return c.cached
	}
	c.neverRead = false
	c.lastMod = info.ModTime()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return c.cached
	}
	var doc runControlDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return c.cached
	}
	switch doc.State {
	case ctlRun, ctlPause, ctlStop:
		c.cached = doc.State
	}
	return c.cached
}
