// watcher.go polls the edited file for changes made outside the workspace.
//
// Every poll interval (default: 2 s) the file is stat'ed and compared to the
// last observation. When it changed and the editor has no unsaved edits the
// buffer is reloaded from disk; with unsaved edits the buffer is kept and the
// footer warns that the file changed underneath it.
package app

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fileWatchTickMsg is emitted by the periodic poll timer.
type fileWatchTickMsg struct{}

// fileWatchEntry records the observable attributes of the edited file.
type fileWatchEntry struct {
	Exists  bool
	ModNano int64
	Size    int64
}

// scheduleFileWatchTick queues the next poll after the configured interval.
func (m *Model) scheduleFileWatchTick() tea.Cmd {
	return tea.Tick(m.effectiveFileWatchInterval(), func(time.Time) tea.Msg {
		return fileWatchTickMsg{}
	})
}

func (m *Model) effectiveFileWatchInterval() time.Duration {
	if m.fileWatchInterval <= 0 {
		return DefaultFileWatchInterval
	}
	return m.fileWatchInterval
}

func statFileWatchEntry(path string) fileWatchEntry {
	info, err := os.Stat(path)
	if err != nil {
		return fileWatchEntry{}
	}
	return fileWatchEntry{Exists: true, ModNano: info.ModTime().UnixNano(), Size: info.Size()}
}

// handleFileWatchTick compares the file to the last observation and
// always schedules the next poll.
func (m *Model) handleFileWatchTick(_ fileWatchTickMsg) (tea.Model, tea.Cmd) {
	entry := statFileWatchEntry(m.filePath)
	if !m.fileWatchReady {
		m.fileWatch = entry
		m.fileWatchReady = true
		return m, m.scheduleFileWatchTick()
	}
	if entry == m.fileWatch {
		return m, m.scheduleFileWatchTick()
	}
	m.fileWatch = entry
	cmd := m.handleExternalFileChange(entry)
	return m, tea.Batch(cmd, m.scheduleFileWatchTick())
}

// handleExternalFileChange reloads the buffer from disk when that cannot
// lose edits.
func (m *Model) handleExternalFileChange(entry fileWatchEntry) tea.Cmd {
	if !entry.Exists {
		m.status = "File was removed on disk; Ctrl+S writes it again"
		appLog.Warn("edited file removed", "path", m.filePath)
		return nil
	}
	if m.dirty() {
		m.status = "File changed on disk; unsaved edits kept"
		appLog.Warn("edited file changed with unsaved edits", "path", m.filePath)
		return nil
	}
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		m.setStatusError("Error reloading file", err, "path", m.filePath)
		return nil
	}
	content := string(data)
	if content == m.savedContent {
		return nil
	}
	m.savedContent = content
	m.editor.SetValue(content)
	m.refreshChanges()
	m.status = fmt.Sprintf("Reloaded %s (changed on disk)", displayName(m.filePath))
	appLog.Info("reloaded edited file", "path", m.filePath)
	return m.requestPreviewRender()
}
