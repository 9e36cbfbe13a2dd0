package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSpinnerTick updates the spinner animation state.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.pointer.setSize(msg.Width, msg.Height)
	m.rebuildDivider()
	m.syncPaneSizes()
	return m, m.requestPreviewRender()
}

// setFocus moves keyboard focus, keeping the textarea cursor in step.
func (m *Model) setFocus(target focusTarget) {
	m.focus = target
	if target == focusEditor {
		m.editor.Focus()
		return
	}
	m.editor.Blur()
}

// cycleFocus moves focus forward (or backward) through editor, divider and
// preview. A disabled divider is skipped.
func (m *Model) cycleFocus(step int) {
	next := m.focus
	for i := focusTarget(0); i < focusTargetCount; i++ {
		next = (next + focusTarget(step) + focusTargetCount) % focusTargetCount
		if next == focusDivider && m.config.Divider.Disabled {
			continue
		}
		break
	}
	m.setFocus(next)
}
