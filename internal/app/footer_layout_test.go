package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestFooterHeightForWidthPrefersTwoRowsWhenFit(t *testing.T) {
	m := &Model{}

	if got := m.footerHeightForWidth(240); got != FooterMinRows {
		t.Fatalf("expected %d footer rows at wide width, got %d", FooterMinRows, got)
	}
}

func TestFooterHeightForWidthExpandsToThreeRowsWhenNeeded(t *testing.T) {
	m := &Model{
		status: "Reloaded notes.md (changed on disk) while the preview was still rendering",
	}

	if got := m.footerHeightForWidth(72); got != FooterMaxRows {
		t.Fatalf("expected %d footer rows at narrow width, got %d", FooterMaxRows, got)
	}
}

func TestBuildStatusRowsTruncatesWithEllipsisWhenOverCapacity(t *testing.T) {
	m := &Model{
		status: strings.Repeat("status ", 30),
	}

	rows, fit := m.buildStatusRows(28, FooterMaxRows)
	if fit {
		t.Fatal("expected rows to overflow and require truncation")
	}
	if len(rows) != FooterMaxRows {
		t.Fatalf("expected %d rows, got %d", FooterMaxRows, len(rows))
	}
	if !strings.Contains(rows[len(rows)-1], "…") {
		t.Fatalf("expected ellipsis in final row, got %q", rows[len(rows)-1])
	}
}

func TestStatusHelpSegmentsByFocus(t *testing.T) {
	t.Run("editor", func(t *testing.T) {
		m := &Model{focus: focusEditor}
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Ctrl+S save") {
			t.Fatalf("expected editor help to include save, got %q", joined)
		}
		if !strings.Contains(joined, "Ctrl+C quit") {
			t.Fatalf("expected help to include quit, got %q", joined)
		}
	})

	t.Run("divider", func(t *testing.T) {
		m := &Model{focus: focusDivider}
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "←/→ resize") || !strings.Contains(joined, "Enter reset") {
			t.Fatalf("expected divider help, got %q", joined)
		}
	})

	t.Run("dragging", func(t *testing.T) {
		m := newTestModel(t)
		_, _ = m.Update(press(69, 5))
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Esc cancel") {
			t.Fatalf("expected drag help, got %q", joined)
		}
		if !strings.Contains(m.dividerSummary(), "dragging") {
			t.Fatalf("expected dragging summary, got %q", m.dividerSummary())
		}
	})
}

func TestDividerSummaryShowsSettledPosition(t *testing.T) {
	m := newTestModel(t)
	if got := m.dividerSummary(); got != "Preview 50" {
		t.Fatalf("expected plain summary, got %q", got)
	}
	m.divider.SetPosition(40)
	if got := m.dividerSummary(); got != "Preview 40 (settled 50)" {
		t.Fatalf("expected settled summary, got %q", got)
	}
}

func TestContentBoundsReserveFooterRowsAndStayNonNegative(t *testing.T) {
	m := &Model{width: 70, height: 2}
	if got := m.contentBounds().Height; got < 0 {
		t.Fatalf("expected non-negative content height, got %d", got)
	}

	m.width = 240
	m.height = 24
	if got, want := m.contentBounds().Height, 24-FooterMinRows; got != want {
		t.Fatalf("expected content height %d, got %d", want, got)
	}
}

func TestViewPadsToTerminalSizeWithAdaptiveFooter(t *testing.T) {
	for _, size := range [][2]int{{120, 40}, {90, 20}, {20, 6}} {
		m := newTestModel(t)
		_, _ = m.Update(tea.WindowSizeMsg{Width: size[0], Height: size[1]})

		out := m.View()
		lines := strings.Split(out, "\n")
		if len(lines) != m.height {
			t.Fatalf("%dx%d: expected %d lines, got %d", size[0], size[1], m.height, len(lines))
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != m.width {
				t.Fatalf("%dx%d: line %d width mismatch: expected %d, got %d", size[0], size[1], i+1, m.width, w)
			}
		}
	}
}

func TestViewDrawsDividerGlyphs(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); !strings.Contains(out, "│") {
		t.Fatal("expected the idle divider glyph")
	}
	m.setFocus(focusDivider)
	if out := m.View(); !strings.Contains(out, "┃") {
		t.Fatal("expected the heavy divider glyph when focused")
	}
}
