package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/preview"
)

// previewFetchedMsg carries a finished fetch back to Update. seq is compared
// to the model's fetchSeq to drop superseded fetches.
type previewFetchedMsg struct {
	seq int
	doc preview.Document
	err error
}

// fetchPreview loads previewSource in the background, cancelling any fetch
// still in flight.
func (m *Model) fetchPreview() tea.Cmd {
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), preview.DefaultTimeout)
	m.fetchCancel = cancel
	m.fetchSeq++
	m.fetching = true
	seq, source, client := m.fetchSeq, m.previewSource, m.previewClient
	appLog.Debug("fetch preview", "source", source, "seq", seq)
	return func() tea.Msg {
		defer cancel()
		doc, err := client.Fetch(ctx, source)
		return previewFetchedMsg{seq: seq, doc: doc, err: err}
	}
}

// handlePreviewFetched shows the fetched document if it is still current.
func (m *Model) handlePreviewFetched(msg previewFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		return m, nil
	}
	m.fetching = false
	m.fetchCancel = nil
	if msg.err != nil {
		m.setStatusError("Error loading preview", msg.err, "source", m.previewSource)
		m.previewDoc = preview.Document{}
		m.lastRender = renderCacheEntry{}
		m.viewport.SetContent(fmt.Sprintf("Could not load %s\n\n%v", m.previewSource, msg.err))
		return m, nil
	}
	m.previewDoc = msg.doc
	m.status = fmt.Sprintf("Loaded %s", msg.doc.Source)
	return m, m.requestPreviewRender()
}

// reloadPreview fetches a remote preview again, or drops the cached render
// of a live preview so it is rebuilt.
func (m *Model) reloadPreview() tea.Cmd {
	if m.previewSource != "" {
		m.status = "Reloading preview"
		return m.fetchPreview()
	}
	m.lastRender = renderCacheEntry{}
	m.status = "Re-rendering preview"
	return m.requestPreviewRender()
}
