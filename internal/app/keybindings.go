package app

import (
	"slices"
	"strings"

	"github.com/treykane/cli-workspace/internal/config"
)

// Actions are the layer between physical key presses and behavior: a key is
// looked up in keyToAction and the resulting action is dispatched by
// handleKey. Action IDs are hyphenated so they can be used as config keys.
const (
	// actionQuit exits the application.
	actionQuit = "app-quit"

	// actionFocusNext moves focus editor -> divider -> preview.
	actionFocusNext = "focus-next"

	// actionFocusPrev moves focus the other way round.
	actionFocusPrev = "focus-prev"

	// actionSave writes the editor buffer to disk.
	actionSave = "file-save"

	// actionPreviewReload fetches the preview source again, or re-renders a
	// live preview.
	actionPreviewReload = "preview-reload"

	// actionCopySource copies the preview source (or the file path).
	actionCopySource = "preview-copy-source"

	// actionPaste inserts clipboard text into the editor.
	actionPaste = "editor-paste"

	// actionHelp toggles the keyboard reference.
	actionHelp = "help-toggle"
)

// defaultActionKeys maps each action to its factory-default key bindings.
// Key strings use the Bubble Tea notation ("ctrl+s", "shift+tab", "f1").
var defaultActionKeys = map[string][]string{
	actionQuit:          {"ctrl+c", "ctrl+q"},
	actionFocusNext:     {"tab"},
	actionFocusPrev:     {"shift+tab"},
	actionSave:          {"ctrl+s"},
	actionPreviewReload: {"ctrl+r"},
	actionCopySource:    {"alt+y"},
	actionPaste:         {"ctrl+v"},
	actionHelp:          {"f1"},
}

// loadKeybindings builds the key/action maps from the defaults and the
// "keybindings" overrides in the config file. Unknown actions are logged
// and ignored; an override replaces the action's full default key set. When
// two actions claim one key the first keeps it.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}
	m.rebuildActionKeyIndex()
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.ToLower(strings.TrimSpace(action))
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. Actions are
// visited in sorted order so conflicts resolve the same way every run.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a configured key. A single uppercase letter
// becomes "shift+<letter>" because Bubble Tea may report shifted letters as
// uppercase runes.
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}
