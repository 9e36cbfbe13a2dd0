package app

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/resize"
)

// handleKey routes a key press: global actions first, then the focused
// element.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shouldIgnoreInput(msg) {
		return m, nil
	}
	key := msg.String()

	if key == "esc" && m.divider != nil && m.divider.IsDragging() {
		return m, m.cancelDrag()
	}

	action := m.actionForKey(key)
	if m.showHelp {
		switch {
		case action == actionQuit:
			return m.quit()
		case action == actionHelp, key == "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case actionQuit:
		return m.quit()
	case actionHelp:
		m.showHelp = true
		return m, nil
	case actionFocusNext:
		m.cycleFocus(1)
		return m, nil
	case actionFocusPrev:
		m.cycleFocus(-1)
		return m, nil
	case actionSave:
		m.saveEditor()
		return m, nil
	case actionPreviewReload:
		return m, m.reloadPreview()
	case actionCopySource:
		m.copyPreviewSourceToClipboard()
		return m, nil
	case actionPaste:
		if m.pasteFromClipboardIntoEditor() {
			return m, m.afterEdit()
		}
		return m, nil
	}

	switch m.focus {
	case focusDivider:
		return m.handleDividerKey(key)
	case focusPreview:
		return m.handlePreviewKey(msg)
	default:
		return m.handleEditorKey(msg)
	}
}

// handleDividerKey forwards arrows and enter to the divider controller.
func (m *Model) handleDividerKey(key string) (tea.Model, tea.Cmd) {
	if m.divider == nil {
		return m, nil
	}
	ev := &resize.KeyEvent{Key: strings.TrimPrefix(key, "shift+")}
	ev.Shift = ev.Key != key
	before := m.divider.Position()
	m.dividerSeparator().OnKeyDown(ev)
	if !ev.PropagationStopped() {
		if key == "esc" {
			m.setFocus(focusEditor)
		}
		return m, nil
	}
	if ev.Key == resize.KeyEnter {
		m.status = "Preview size reset"
	}
	return m, m.afterDividerEvent(before)
}

// handlePreviewKey scrolls the preview; esc returns to the editor.
func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.setFocus(focusEditor)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleEditorKey feeds the textarea and re-renders a live preview when the
// buffer changed.
func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if before == m.editor.Value() {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.afterEdit())
}

func (m *Model) afterEdit() tea.Cmd {
	m.refreshChanges()
	if m.previewSource != "" {
		return nil
	}
	return m.requestPreviewRender()
}

// saveEditor writes the buffer to the edited file.
func (m *Model) saveEditor() {
	content := m.editor.Value()
	if err := os.WriteFile(m.filePath, []byte(content), FilePermission); err != nil {
		m.setStatusError("Error saving file", err, "path", m.filePath)
		return
	}
	m.savedContent = content
	m.refreshChanges()
	m.fileWatch = statFileWatchEntry(m.filePath)
	m.status = fmt.Sprintf("Saved %s", displayName(m.filePath))
	appLog.Info("saved file", "path", m.filePath, "bytes", len(content))
}

// quit remembers the session state and stops the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	m.persistFileState()
	return m, tea.Quit
}
