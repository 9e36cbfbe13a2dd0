// state.go persists per-file session state: the preview scroll offset.
//
// State is stored as JSON next to the config file (~/.cli-workspace/state.json)
// keyed by the absolute path of the edited file. It is written when the
// application quits and read once at startup. The divider always starts at
// its configured initial size.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileState is what is remembered for one edited file.
type fileState struct {
	PreviewOffset int `json:"preview_offset,omitempty"`
}

// persistedState is the on-disk JSON representation of session state.
type persistedState struct {
	Files map[string]fileState `json:"files,omitempty"`
}

// loadAppState reads the state file. A missing file is an empty state.
// Relative paths and negative offsets are discarded.
func loadAppState(path string) (persistedState, error) {
	state := persistedState{Files: map[string]fileState{}}
	if path == "" {
		return state, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("read app state %q: %w", path, err)
	}

	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		return state, fmt.Errorf("parse app state %q: %w", path, err)
	}
	for file, fs := range persisted.Files {
		if !filepath.IsAbs(file) || fs.PreviewOffset < 0 {
			continue
		}
		state.Files[file] = fs
	}
	return state, nil
}

// saveAppState writes the state file atomically.
func saveAppState(path string, state persistedState) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return fmt.Errorf("create app state dir: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode app state: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePermission); err != nil {
		return fmt.Errorf("write app state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace app state: %w", err)
	}
	return nil
}

// restoreFileState applies what was remembered for the edited file.
func (m *Model) restoreFileState() {
	state, err := loadAppState(m.statePath)
	if err != nil {
		appLog.Warn("load app state", "path", m.statePath, "error", err)
		return
	}
	m.state = state
	fs, ok := state.Files[m.filePath]
	if !ok {
		return
	}
	m.restoredPreviewOffset = fs.PreviewOffset
}

// persistFileState records the preview scroll offset.
func (m *Model) persistFileState() {
	if m.statePath == "" {
		return
	}
	if m.state.Files == nil {
		m.state.Files = map[string]fileState{}
	}
	m.state.Files[m.filePath] = fileState{PreviewOffset: m.viewport.YOffset}
	if err := saveAppState(m.statePath, m.state); err != nil {
		appLog.Warn("save app state", "path", m.statePath, "error", err)
	}
}
