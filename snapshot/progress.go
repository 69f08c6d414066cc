package snapshot

import "encoding/json"

// Event is one "progress" stream record. Zero counts are
// rendered literally (placed:0 is meaningful at root exhaustion); Status is
// only set on the final event of an attempt ("solved", "stalled",
// "stopped_by_user", "exhausted").
type Event struct {
	Event          string `json:"event"`
	Run            int    `json:"run"`
	Seed           int64  `json:"seed"`
	Placed         int    `json:"placed"`
	BestDepth      int    `json:"best_depth"`
	Total          int    `json:"total"`
	Attempts       int64  `json:"attempts"`
	AttemptsPerSec int64  `json:"attempts_per_sec"`
	Status         string `json:"status,omitempty"`
}

// ControlEvent is a run-control transition record: event is one of
// "paused", "resumed", or "stopped", stamped with the wall-clock time the
// transition was observed.
type ControlEvent struct {
	Event string  `json:"event"`
	Run   int     `json:"run"`
	Seed  int64   `json:"seed"`
	TS    float64 `json:"ts"`
}

// ProgressWriter appends progress events to an append-only JSONL stream and
// overwrites a summary file with the latest event.
type ProgressWriter struct {
	streamPath  string
	summaryPath string
}

// NewProgressWriter returns a ProgressWriter targeting the given stream
// (progress.jsonl) and summary (progress.json) paths.
func NewProgressWriter(streamPath, summaryPath string) *ProgressWriter {
	return &ProgressWriter{streamPath: streamPath, summaryPath: summaryPath}
}

// Emit appends e to the stream and overwrites the summary file with it.
// Both writes are best-effort: an error is returned for the caller to log,
// never to interrupt the search.
func (w *ProgressWriter) Emit(e Event) error {
	return w.emit(e)
}

// EmitControl appends a run-control transition event to the stream and
// overwrites the summary file with it, same best-effort contract as Emit.
func (w *ProgressWriter) EmitControl(e ControlEvent) error {
	return w.emit(e)
}

func (w *ProgressWriter) emit(v interface{}) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	streamErr := appendLine(w.streamPath, string(line))
	summaryErr := atomicWrite(w.summaryPath, line)
	if streamErr != nil {
		return streamErr
	}
	return summaryErr
}
