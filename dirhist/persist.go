package dirhist

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
)

// stackState is the serialized form of a Stack.
type stackState struct {
	Cursor  int      `json:"cursor"`
	Entries []string `json:"entries"`
}

// SaveState persists the stack to path. An empty path disables
// persistence.
func SaveState(s *Stack, path string) error {
	if path == "" {
		return nil
	}
	state := stackState{
		Cursor:  s.cursor,
		Entries: s.Entries(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadState restores stack contents from path. A missing file is not
// an error. Entries whose directories no longer exist are dropped, the
// cursor is clamped into range, and the stack's size bound is
// re-applied. Malformed entries are skipped rather than failing the
// whole load.
func LoadState(s *Stack, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cursor, _ := jsonparser.GetInt(data, "cursor")

	var entries []string
	jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil || dataType != jsonparser.String {
			return
		}
		dir, perr := jsonparser.ParseString(value)
		if perr != nil {
			return
		}
		if fi, serr := os.Stat(dir); serr != nil || !fi.IsDir() {
			return
		}
		entries = append(entries, dir)
	}, "entries")

	if len(entries) == 0 {
		return nil
	}

	s.entries = entries
	if s.maxSize > 0 && len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
	c := int(cursor)
	if c < 0 {
		c = 0
	}
	if c >= len(s.entries) {
		c = len(s.entries) - 1
	}
	s.cursor = c
	return nil
}
