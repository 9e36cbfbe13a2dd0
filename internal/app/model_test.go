package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-workspace/internal/config"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newTestModel builds a model on a temp file with the default divider
// (reversed X, initial 50, min 30, editor min 60) and sizes it to 120x40.
func newTestModel(t *testing.T, mutate ...func(*config.Config)) *Model {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLI_WORKSPACE_CONFIG", filepath.Join(dir, "config.json"))

	cfg := config.Default()
	cfg.EditorFile = filepath.Join(dir, "notes.md")
	mustWriteFile(t, cfg.EditorFile, "# Notes\n\nhello\n")
	for _, fn := range mutate {
		fn(&cfg)
	}

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestNewCreatesMissingEditorFileWithWelcomeText(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLI_WORKSPACE_CONFIG", filepath.Join(dir, "config.json"))
	cfg := config.Default()
	cfg.EditorFile = filepath.Join(dir, "nested", "README.md")

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	data, err := os.ReadFile(cfg.EditorFile)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	if string(data) != welcomeText || m.editor.Value() != welcomeText {
		t.Fatal("expected welcome text on disk and in the editor")
	}
	if m.dirty() {
		t.Fatal("fresh model should not be dirty")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Divider.Axis = "z"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for invalid axis")
	}
}

func TestNewUsesConfiguredFileWatchInterval(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.FileWatchIntervalSeconds = 10
	})
	if got := m.effectiveFileWatchInterval(); got != 10*time.Second {
		t.Fatalf("expected file watch interval 10s, got %s", got)
	}
}

func TestViewBeforeWindowSizeIsLoading(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLI_WORKSPACE_CONFIG", filepath.Join(dir, "config.json"))
	cfg := config.Default()
	cfg.EditorFile = filepath.Join(dir, "notes.md")
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading view, got %q", got)
	}
	if m.divider != nil {
		t.Fatal("divider must not exist before the first window size")
	}
}

func TestQuitPersistsPreviewOffsetButNotDividerPosition(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLI_WORKSPACE_CONFIG", filepath.Join(dir, "config.json"))
	cfg := config.Default()
	cfg.EditorFile = filepath.Join(dir, "notes.md")
	mustWriteFile(t, cfg.EditorFile, "text\n")

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.divider.SetPosition(44)
	m.viewport.YOffset = 3
	if _, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatal("expected quit command")
	}

	restarted, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if got := restarted.restoredPreviewOffset; got != 3 {
		t.Fatalf("expected restored preview offset 3, got %d", got)
	}
	_, _ = restarted.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := restarted.divider.Position(); got != 50 {
		t.Fatalf("divider must start at the configured 50, got %d", got)
	}
}
