package app

import (
	"testing"

	"github.com/treykane/cli-workspace/internal/resize"
)

func TestSplitLayout(t *testing.T) {
	content := resize.Rect{Width: 100, Height: 20}
	tests := []struct {
		name                     string
		axis                     resize.Axis
		reverse                  bool
		size                     int
		editor, divider, preview resize.Rect
	}{
		{
			name: "reversed x", axis: resize.AxisX, reverse: true, size: 30,
			editor:  resize.Rect{X: 0, Width: 69, Height: 20},
			divider: resize.Rect{X: 69, Width: 1, Height: 20},
			preview: resize.Rect{X: 70, Width: 30, Height: 20},
		},
		{
			name: "plain x", axis: resize.AxisX, size: 30,
			preview: resize.Rect{X: 0, Width: 30, Height: 20},
			divider: resize.Rect{X: 30, Width: 1, Height: 20},
			editor:  resize.Rect{X: 31, Width: 69, Height: 20},
		},
		{
			name: "reversed y", axis: resize.AxisY, reverse: true, size: 5,
			editor:  resize.Rect{Y: 0, Width: 100, Height: 14},
			divider: resize.Rect{Y: 14, Width: 100, Height: 1},
			preview: resize.Rect{Y: 15, Width: 100, Height: 5},
		},
		{
			name: "oversized preview keeps the divider", axis: resize.AxisX, reverse: true, size: 500,
			editor:  resize.Rect{X: 0, Width: 0, Height: 20},
			divider: resize.Rect{X: 0, Width: 1, Height: 20},
			preview: resize.Rect{X: 1, Width: 99, Height: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLayout(content, tt.axis, tt.reverse, tt.size)
			if got.Editor != tt.editor || got.Divider != tt.divider || got.Preview != tt.preview {
				t.Fatalf("splitLayout() = %+v", got)
			}
		})
	}
}

func TestDividerBounds(t *testing.T) {
	tests := []struct {
		name                       string
		total, min, max, editorMin int
		wantLo, wantHi             int
	}{
		{name: "editor min caps", total: 120, min: 30, editorMin: 60, wantLo: 30, wantHi: 59},
		{name: "explicit max wins", total: 200, min: 30, max: 80, editorMin: 60, wantLo: 30, wantHi: 80},
		{name: "tiny terminal", total: 20, min: 30, editorMin: 60, wantLo: 30, wantHi: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := dividerBounds(tt.total, tt.min, tt.max, tt.editorMin)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Fatalf("dividerBounds() = [%d,%d], want [%d,%d]", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}
