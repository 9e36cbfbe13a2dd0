package app

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// changeSummary counts lines added and removed since the last save.
type changeSummary struct {
	added   int
	removed int
}

func (c changeSummary) clean() bool {
	return c.added == 0 && c.removed == 0
}

func (c changeSummary) String() string {
	if c.clean() {
		return ""
	}
	return fmt.Sprintf("+%d -%d", c.added, c.removed)
}

// summarizeChanges diffs before and after line by line.
func summarizeChanges(before, after string) changeSummary {
	if before == after {
		return changeSummary{}
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var summary changeSummary
	for _, df := range diffs {
		n := countLines(df.Text)
		switch df.Type {
		case dmp.DiffInsert:
			summary.added += n
		case dmp.DiffDelete:
			summary.removed += n
		}
	}
	return summary
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// refreshChanges recomputes the unsaved-change summary for the editor.
func (m *Model) refreshChanges() {
	m.changes = summarizeChanges(m.savedContent, m.editor.Value())
}

// dirty reports whether the editor holds unsaved edits.
func (m *Model) dirty() bool {
	return m.editor.Value() != m.savedContent
}
