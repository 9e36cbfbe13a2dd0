package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyPreviewSourceToClipboard copies what the preview shows: the fetched
// document's source, or the edited file's path when the preview is live.
func (m *Model) copyPreviewSourceToClipboard() {
	source := m.previewSource
	label := "preview source"
	if source == "" {
		source = m.filePath
		label = "file path"
	}
	if source == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := clipboard.WriteAll(source); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = fmt.Sprintf("Copied %s", label)
}

// pasteFromClipboardIntoEditor inserts clipboard text at the editor cursor.
func (m *Model) pasteFromClipboardIntoEditor() bool {
	if m.focus != focusEditor {
		return false
	}
	value, err := clipboard.ReadAll()
	if err != nil {
		m.setStatusError("Clipboard paste failed", err)
		return false
	}
	if value == "" {
		m.status = "Clipboard is empty"
		return false
	}
	m.editor.InsertString(value)
	m.status = "Pasted from clipboard"
	return true
}
