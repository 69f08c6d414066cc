package piece

import (
	"encoding/json"
	"sort"
	"strings"
)

// jsonOffset is the wire representation of an Offset: [dx, dy, dz].
type jsonOffset [3]int

// jsonOrientation is the wire representation of an Orientation: four offsets.
type jsonOrientation [4]jsonOffset

// Load parses a piece-library JSON document in either accepted shape:
//
//	(a) {piece_id: [orientation, orientation, ...]}
//	(b) {piece_id__k: [[dx,dy,dz] x4]}, grouped by the prefix before "__"
//
// Both collapse into the single internal Library representation. Load
// returns ErrInvalidPieceLibrary if the top-level document isn't a JSON
// object, if the object is empty, or if a value matches neither accepted
// shape.
func Load(data []byte) (Library, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidPieceLibrary
	}
	if len(raw) == 0 {
		return nil, ErrInvalidPieceLibrary
	}

	// Keys are processed in sorted order so that format (b)'s grouped
	// orientations land in a stable sequence ("A__0" before "A__1"): map
	// iteration order would otherwise vary run to run and break the
	// engine's determinism guarantees downstream.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lib := make(Library)
	for _, key := range keys {
		val := raw[key]
		// Format (a): value is a list of orientations.
		var oris []jsonOrientation
		if err := json.Unmarshal(val, &oris); err == nil {
			lib[key] = append(lib[key], toOrientations(oris)...)
			continue
		}

		// Format (b): value is a single orientation, grouped by "__" prefix.
		var single jsonOrientation
		if err := json.Unmarshal(val, &single); err == nil {
			id := key
			if i := strings.Index(key, "__"); i >= 0 {
				id = key[:i]
			}
			lib[id] = append(lib[id], toOrientation(single))
			continue
		}

		return nil, ErrInvalidPieceLibrary
	}

	return lib, nil
}

func toOrientations(in []jsonOrientation) []Orientation {
	out := make([]Orientation, len(in))
	for i, o := range in {
		out[i] = toOrientation(o)
	}
	return out
}

func toOrientation(o jsonOrientation) Orientation {
	var out Orientation
	for i, off := range o {
		out[i] = Offset{DX: off[0], DY: off[1], DZ: off[2]}
	}
	return out
}
