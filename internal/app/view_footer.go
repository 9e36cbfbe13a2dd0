package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/cli-workspace/internal/resize"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.dirty() || (m.divider != nil && m.divider.IsDragging()) {
		style = editStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	quit := m.primaryActionKey(actionQuit, "Ctrl+C")
	focus := m.primaryActionKey(actionFocusNext, "Tab")
	help := m.primaryActionKey(actionHelp, "F1")
	if m.showHelp {
		return []string{help + "/Esc close help", quit + " quit"}
	}
	if m.divider != nil && m.divider.IsDragging() {
		return []string{"Release to settle", "Esc cancel"}
	}

	var segments []string
	switch m.focus {
	case focusDivider:
		segments = []string{"←/→ resize", "Shift+←/→ resize more", "Enter reset", "Esc editor"}
		if m.axis() == resize.AxisY {
			segments[0], segments[1] = "↑/↓ resize", "Shift+↑/↓ resize more"
		}
	case focusPreview:
		segments = []string{"↑/↓ scroll", "PgUp/PgDn page", "Esc editor"}
	default:
		segments = []string{
			m.primaryActionKey(actionSave, "Ctrl+S") + " save",
			m.primaryActionKey(actionPaste, "Ctrl+V") + " paste",
		}
	}
	return append(segments,
		focus+" focus",
		"Drag divider resize",
		m.primaryActionKey(actionPreviewReload, "Ctrl+R")+" reload",
		m.primaryActionKey(actionCopySource, "Alt+Y")+" copy source",
		help+" help",
		quit+" quit",
	)
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 4)
	parts = append(parts, "Focus "+m.focus.String())
	if divider := m.dividerSummary(); divider != "" {
		parts = append(parts, divider)
	}
	if metrics := m.bufferMetricsSummary(); metrics != "" {
		parts = append(parts, metrics)
	}
	if changes := m.changes.String(); changes != "" {
		parts = append(parts, "Unsaved "+changes)
	}
	return parts
}

// dividerSummary shows the live and settled preview size.
func (m *Model) dividerSummary() string {
	if m.divider == nil {
		return ""
	}
	summary := fmt.Sprintf("Preview %d", m.divider.Position())
	switch {
	case m.divider.Config().Disabled:
		summary += " (locked)"
	case m.divider.IsDragging():
		summary += fmt.Sprintf(" (dragging from %d)", m.divider.EndPosition())
	case m.divider.EndPosition() != m.divider.Position():
		summary += fmt.Sprintf(" (settled %d)", m.divider.EndPosition())
	}
	return summary
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}

func (m *Model) renderHelp(width, height int) string {
	key := func(action, fallback string) string {
		return fmt.Sprintf("  %-20s", m.allActionKeys(action, fallback))
	}
	lines := []string{
		titleStyle.Render("Keyboard Shortcuts"),
		"",
		"Anywhere",
		key(actionFocusNext, "Tab") + "Focus editor, divider, preview",
		key(actionFocusPrev, "Shift+Tab") + "Focus backwards",
		key(actionSave, "Ctrl+S") + "Save the file",
		key(actionPreviewReload, "Ctrl+R") + "Reload the preview",
		key(actionCopySource, "Alt+Y") + "Copy the preview source",
		key(actionPaste, "Ctrl+V") + "Paste into the editor",
		key(actionHelp, "F1") + "Toggle help",
		key(actionQuit, "Ctrl+C") + "Quit",
		"",
		"Divider",
		"  Drag                Resize the preview",
		"  Double click        Reset the preview size",
		"  ←/→ or ↑/↓          Resize by one step (when focused)",
		"  Shift+arrow         Resize by a large step",
		"  Enter               Reset the preview size",
		"  Esc                 Cancel a drag / back to the editor",
		"",
		"Preview",
		"  ↑/↓, PgUp/PgDn      Scroll",
		"  Mouse wheel         Scroll",
		"  Esc                 Back to the editor",
		"",
		"Press " + m.primaryActionKey(actionHelp, "F1") + " or Esc to return.",
	}

	visible := min(height, len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], width))
	}
	return strings.Join(out, "\n")
}
