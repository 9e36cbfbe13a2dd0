package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-workspace/internal/resize"
)

// View draws the split content area and the status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 || m.divider == nil {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()

	var row string
	if m.showHelp {
		row = m.renderHelpPanel(layout.Content.Width, layout.Content.Height)
	} else {
		row = m.renderContent(layout)
	}
	row = padBlock(row, m.width, layout.Content.Height)

	view := row + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

// renderContent joins the panes and the divider in layout order.
func (m *Model) renderContent(layout LayoutDimensions) string {
	editor := m.renderEditorPane(layout.Editor)
	divider := m.renderDivider(layout.Divider)
	previewPart := m.renderPreviewPane(layout.Preview)

	parts := []string{previewPart, divider, editor}
	if m.config.Divider.Reverse {
		parts = []string{editor, divider, previewPart}
	}
	parts = nonEmpty(parts)
	if m.axis() == resize.AxisY {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderEditorPane(r resize.Rect) string {
	style := editPane
	if m.focus != focusEditor {
		style = style.Copy().BorderForeground(blurredBorder)
	}
	title := "Editing " + displayName(m.filePath)
	if !m.changes.clean() {
		title += " " + dirtyStyle.Render("● "+m.changes.String())
	}
	return renderPane(style, editHeader, title, m.editor.View(), r)
}

func (m *Model) renderPreviewPane(r resize.Rect) string {
	style := previewPane
	if m.focus != focusPreview {
		style = style.Copy().BorderForeground(blurredBorder)
	}
	return renderPane(style, previewHeader, m.previewTitle(), m.viewport.View(), r)
}

// previewTitle names the preview source and shows activity and the reload key.
func (m *Model) previewTitle() string {
	title := "Preview: live"
	if m.previewSource != "" {
		title = "Preview: " + m.previewSource
	}
	if m.fetching || m.rendering {
		title = m.spinner.View() + " " + title
	}
	hint := mutedStyle.Render("(" + m.primaryActionKey(actionPreviewReload, "Ctrl+R") + " reload)")
	return title + " " + hint
}

// renderPane draws a bordered pane with a one-row header filling r.
func renderPane(style, header lipgloss.Style, title, body string, r resize.Rect) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	innerWidth := r.Width - style.GetHorizontalFrameSize()
	innerHeight := r.Height - style.GetVerticalFrameSize()
	if innerWidth <= 0 || innerHeight <= 0 {
		return padBlock("", r.Width, r.Height)
	}
	head := header.Render(truncate(title, innerWidth))
	content := padBlock(head+"\n"+padBlock(body, innerWidth, max(0, innerHeight-paneHeaderRows)), innerWidth, innerHeight)
	return style.
		Width(r.Width - style.GetHorizontalBorderSize()).
		Height(r.Height - style.GetVerticalBorderSize()).
		Render(content)
}

// renderDivider draws the divider cell line, styled by its state.
func (m *Model) renderDivider(r resize.Rect) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	sep := m.dividerSeparator()
	style := dividerIdle
	heavy := false
	switch {
	case sep.Disabled:
		style = dividerDisabled
	case m.divider.IsDragging():
		style, heavy = dividerActive, true
	case m.focus == focusDivider:
		style, heavy = dividerFocused, true
	}

	if sep.Orientation == resize.OrientationVertical {
		glyph := "│"
		if heavy {
			glyph = "┃"
		}
		lines := make([]string, r.Height)
		for i := range lines {
			lines[i] = style.Render(strings.Repeat(glyph, r.Width))
		}
		return strings.Join(lines, "\n")
	}
	glyph := "─"
	if heavy {
		glyph = "━"
	}
	line := style.Render(strings.Repeat(glyph, r.Width))
	return strings.TrimSuffix(strings.Repeat(line+"\n", r.Height), "\n")
}

func (m *Model) renderHelpPanel(width, height int) string {
	if width <= popupStyle.GetHorizontalFrameSize() || height <= popupStyle.GetVerticalFrameSize() {
		return ""
	}
	innerWidth := width - popupStyle.GetHorizontalFrameSize()
	innerHeight := height - popupStyle.GetVerticalFrameSize()
	body := padBlock(m.renderHelp(innerWidth, innerHeight), innerWidth, innerHeight)
	return popupStyle.
		Width(width - popupStyle.GetHorizontalBorderSize()).
		Height(height - popupStyle.GetVerticalBorderSize()).
		Render(body)
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
