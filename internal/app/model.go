package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/config"
	"github.com/treykane/cli-workspace/internal/preview"
	"github.com/treykane/cli-workspace/internal/resize"
)

// focusTarget is the element that receives key presses.
type focusTarget int

const (
	focusEditor focusTarget = iota
	focusDivider
	focusPreview
	focusTargetCount
)

func (f focusTarget) String() string {
	switch f {
	case focusDivider:
		return "divider"
	case focusPreview:
		return "preview"
	default:
		return "editor"
	}
}

// Model holds the Bubble Tea state for the workspace.
type Model struct {
	config config.Config

	// Editor pane
	filePath     string
	savedContent string
	editor       textarea.Model
	changes      changeSummary

	// Preview pane
	viewport      viewport.Model
	previewClient *preview.Client
	previewSource string // empty: live render of the editor buffer
	previewDoc    preview.Document
	fetchSeq      int
	fetching      bool
	fetchCancel   context.CancelFunc

	// Rendering indicator and debounce bookkeeping
	spinner    spinner.Model
	rendering  bool
	renderSeq  int
	lastRender renderCacheEntry

	// Divider
	pointer        *pointerScope
	divider        *resize.Controller
	pressOnDivider bool
	clicks         clickTracker
	previewResized bool // set by the resize-end callback, consumed after each event

	statePath             string
	state                 persistedState
	restoredPreviewOffset int

	focus    focusTarget
	status   string
	showHelp bool

	keyForAction map[string][]string
	keyToAction  map[string]string

	fileWatchInterval time.Duration
	fileWatch         fileWatchEntry
	fileWatchReady    bool

	now func() time.Time

	width  int
	height int
}

// New prepares the workspace model: it loads (or creates) the editor file
// and wires the preview source and divider settings from cfg.
func New(cfg config.Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	content, err := ensureEditorFile(cfg.EditorFile)
	if err != nil {
		return nil, err
	}

	editor := textarea.New()
	editor.Placeholder = "Start writing..."
	editor.CharLimit = 0
	applyEditorTheme(&editor)
	editor.SetValue(content)
	editor.Focus()

	vp := viewport.New(0, 0)
	vp.SetContent("Rendering preview...")

	spin := spinner.New()
	spin.Spinner = spinner.Line

	m := &Model{
		config:            cfg,
		filePath:          cfg.EditorFile,
		savedContent:      content,
		editor:            editor,
		viewport:          vp,
		previewClient:     preview.NewClient(cfg.PreviewBaseURL),
		previewSource:     cfg.PreviewURL,
		spinner:           spin,
		pointer:           newPointerScope(),
		focus:             focusEditor,
		status:            "Ready",
		fileWatchInterval: time.Duration(cfg.FileWatchIntervalSeconds) * time.Second,
		now:               time.Now,
	}
	if path, err := config.StatePath(); err == nil {
		m.statePath = path
	} else {
		appLog.Warn("resolve state path", "error", err)
	}
	m.restoreFileState()
	m.loadKeybindings(cfg)
	m.fileWatch = statFileWatchEntry(m.filePath)
	m.fileWatchReady = true
	return m, nil
}

// Init starts the spinner, the file watcher and, for remote previews, the
// first fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.scheduleFileWatchTick()}
	if m.previewSource != "" {
		cmds = append(cmds, m.fetchPreview())
	}
	return tea.Batch(cmds...)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.BlurMsg:
		return m.handleBlur()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case renderRequestMsg:
		return m.handleRenderRequest(msg)
	case renderResultMsg:
		return m.handleRenderResult(msg)
	case previewFetchedMsg:
		return m.handlePreviewFetched(msg)
	case fileWatchTickMsg:
		return m.handleFileWatchTick(msg)
	}
	return m, nil
}

// ensureEditorFile returns the file's content, creating it with the welcome
// text when it does not exist yet.
func ensureEditorFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(welcomeText), FilePermission); err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	appLog.Info("created editor file", "path", path)
	return welcomeText, nil
}

const welcomeText = "# Welcome to CLI Workspace\n\n" +
	"Write Markdown on the left; the preview on the right follows as you type.\n\n" +
	"## Resizing the preview\n\n" +
	"- Drag the divider with the mouse\n" +
	"- Tab to the divider, then use the arrow keys (Shift for bigger steps)\n" +
	"- Enter or a double click resets the divider\n\n" +
	"## Keys\n\n" +
	"- Ctrl+S: save\n" +
	"- Ctrl+R: reload the preview\n" +
	"- F1: help\n" +
	"- Ctrl+Q: quit\n"
