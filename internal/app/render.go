// render.go implements debounced, cached markdown rendering for the preview pane.
//
// The preview shows either the live editor buffer or a fetched document.
// Rendering through Glamour is relatively expensive, so two optimizations keep
// typing and dragging responsive:
//
// # Debouncing
//
// Every edit, divider release or fetch calls requestPreviewRender, which bumps
// a sequence number and schedules a renderRequestMsg after RenderDebounce. If
// another change lands first the sequence moves on and the stale request is
// dropped. While the divider is being dragged no render is requested at all;
// the last render is clipped to the live pane size and a fresh one is
// requested when the drag ends.
//
// # Caching
//
// The last completed render is remembered together with the markdown source
// and the width bucket it was produced for. Re-requesting the same source at
// the same bucket is served from memory. Glamour TermRenderer instances are
// cached per (style, width) in a small LRU shared by background renders.
package app

import (
	"container/list"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// renderCacheEntry is the last render shown in the preview.
type renderCacheEntry struct {
	source  string // markdown that was rendered
	width   int    // width bucket used for word wrapping
	content string // ANSI-formatted output
}

// renderRequestMsg is emitted by the debounce timer. seq is compared to the
// model's renderSeq to discard superseded requests.
type renderRequestMsg struct {
	seq   int
	width int
}

// renderResultMsg carries a finished render back to Update.
type renderResultMsg struct {
	seq     int
	width   int
	source  string
	content string
}

type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers kept.
	maxRendererCacheEntries = 8

	// rendererCacheMu guards the renderer cache; renders run in Cmd goroutines.
	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New() // front = least recently used
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// previewInnerWidth is the usable preview body width for the current layout.
func (m *Model) previewInnerWidth() int {
	layout := m.calculateLayout()
	return max(0, layout.Preview.Width-previewPane.GetHorizontalFrameSize())
}

// previewMarkdown returns the text the preview should show and whether it
// is markdown.
func (m *Model) previewMarkdown() (string, bool) {
	if m.previewSource == "" {
		return m.editor.Value(), true
	}
	return m.previewDoc.Body, m.previewDoc.Markdown
}

// requestPreviewRender schedules a debounced render of the preview, or
// serves it from the last render when nothing relevant changed.
func (m *Model) requestPreviewRender() tea.Cmd {
	if m.width == 0 || (m.divider != nil && m.divider.IsDragging()) {
		return nil
	}
	width := roundWidthToNearestBucket(m.previewInnerWidth())
	source, markdown := m.previewMarkdown()
	if !markdown {
		m.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(source))
		m.clearRenderingState()
		return nil
	}
	if m.lastRender.width == width && m.lastRender.source == source && m.lastRender.content != "" {
		m.viewport.SetContent(m.lastRender.content)
		m.clearRenderingState()
		return nil
	}

	m.rendering = true
	m.renderSeq++
	seq := m.renderSeq
	return tea.Tick(RenderDebounce, func(time.Time) tea.Msg {
		return renderRequestMsg{seq: seq, width: width}
	})
}

// handleRenderRequest starts the background render if the request is still
// the newest one. The source is read now, not when the request was queued.
func (m *Model) handleRenderRequest(msg renderRequestMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.renderSeq {
		return m, nil
	}
	source, _ := m.previewMarkdown()
	return m, renderMarkdownCmd(source, msg.width, msg.seq, m.config.GlamourStyle)
}

// handleRenderResult shows a finished render if it is still current.
func (m *Model) handleRenderResult(msg renderResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.renderSeq {
		return m, nil
	}
	m.lastRender = renderCacheEntry{source: msg.source, width: msg.width, content: msg.content}
	if msg.width == roundWidthToNearestBucket(m.previewInnerWidth()) {
		m.viewport.SetContent(msg.content)
		if m.restoredPreviewOffset > 0 {
			m.viewport.SetYOffset(m.restoredPreviewOffset)
			m.restoredPreviewOffset = 0
		}
		m.clearRenderingState()
		return m, nil
	}
	// The pane changed size while rendering; go again at the new width.
	return m, m.requestPreviewRender()
}

// renderMarkdownCmd renders on a background goroutine.
func renderMarkdownCmd(source string, width, seq int, style string) tea.Cmd {
	return func() tea.Msg {
		return renderResultMsg{
			seq:     seq,
			width:   width,
			source:  source,
			content: renderMarkdown(source, width, style),
		}
	}
}

// renderMarkdown converts markdown to ANSI output. On failure the raw text
// is returned so the user still sees content.
func renderMarkdown(content string, width int, style string) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(style, width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "style", style, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour renderer for style and width.
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: normalizeGlamourStyle(style), width: width}

	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		rendererCacheOrder.MoveToBack(rendererCacheNodes[key])
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		evicted, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, evicted)
		delete(rendererCacheNodes, evicted)
	}
	return renderer, nil
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}

// normalizeGlamourStyle maps the configured style to one Glamour knows.
// "auto" queries the terminal background, which can leak OSC replies into
// the editor, so it is only used when asked for explicitly.
func normalizeGlamourStyle(style string) string {
	switch style = strings.ToLower(strings.TrimSpace(style)); style {
	case "auto", "dark", "light", "notty":
		return style
	default:
		return "dark"
	}
}

func glamourStyleOption(style string) glamour.TermRendererOption {
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

// clearRenderingState resets rendering flags after completion.
func (m *Model) clearRenderingState() {
	m.rendering = false
}

// roundWidthToNearestBucket rounds width down to a RenderWidthBucket
// multiple so small divider moves reuse renders.
func roundWidthToNearestBucket(width int) int {
	if width <= 0 {
		return 80
	}
	if width < RenderWidthBucket {
		return width
	}
	return (width / RenderWidthBucket) * RenderWidthBucket
}
