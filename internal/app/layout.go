// layout.go centralizes all terminal layout calculations for the split UI.
//
// The content area (everything above the footer) is split along the divider
// axis into the editor pane, the one-cell divider, and the preview pane. The
// preview's size along the axis is the divider controller's position; the
// editor takes whatever remains. With a reversed divider the preview is
// anchored to the right (or bottom) edge, otherwise to the left (or top).
package app

import "github.com/treykane/cli-workspace/internal/resize"

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	Content resize.Rect // area above the footer; the divider's reference frame
	Editor  resize.Rect
	Divider resize.Rect
	Preview resize.Rect
}

// calculateLayout computes pane rectangles from the terminal size and the
// live divider position.
func (m *Model) calculateLayout() LayoutDimensions {
	content := m.contentBounds()
	position := m.config.Divider.Initial
	if m.divider != nil {
		position = m.divider.Position()
	}
	return splitLayout(content, m.axis(), m.config.Divider.Reverse, position)
}

// contentBounds is the area above the footer.
func (m *Model) contentBounds() resize.Rect {
	return resize.Rect{
		Width:  m.width,
		Height: max(0, m.height-m.footerHeightForWidth(m.width)),
	}
}

// splitLayout divides content into editor, divider and preview rectangles.
// The preview never takes the divider's cell away.
func splitLayout(content resize.Rect, axis resize.Axis, reverse bool, previewSize int) LayoutDimensions {
	total := content.Width
	if axis == resize.AxisY {
		total = content.Height
	}
	previewSize = clamp(previewSize, 0, max(0, total-DividerThickness))
	editorSize := max(0, total-previewSize-DividerThickness)

	// Offsets along the axis for each segment.
	editorAt, dividerAt, previewAt := 0, editorSize, editorSize+DividerThickness
	if !reverse {
		previewAt, dividerAt, editorAt = 0, previewSize, previewSize+DividerThickness
	}

	segment := func(at, size int) resize.Rect {
		if axis == resize.AxisY {
			return resize.Rect{X: content.X, Y: content.Y + at, Width: content.Width, Height: size}
		}
		return resize.Rect{X: content.X + at, Y: content.Y, Width: size, Height: content.Height}
	}

	return LayoutDimensions{
		Content: content,
		Editor:  segment(editorAt, editorSize),
		Divider: segment(dividerAt, min(DividerThickness, total)),
		Preview: segment(previewAt, previewSize),
	}
}

// dividerBounds derives the controller range for a content area: the
// configured minimum, and a maximum that always leaves EditorMin cells to the
// editor (further capped by an explicit Max). The result satisfies
// lo <= hi even on tiny terminals.
func dividerBounds(total, minSize, maxSize, editorMin int) (lo, hi int) {
	hi = total - editorMin - DividerThickness
	if maxSize > 0 && maxSize < hi {
		hi = maxSize
	}
	lo = minSize
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

func contains(r resize.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
