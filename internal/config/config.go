// Package config loads and saves cli-workspace settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (see setDefaults).
//  2. ~/.cli-workspace/config.json, or the file named by CLI_WORKSPACE_CONFIG.
//  3. CLI_WORKSPACE_* environment variables and bound command-line flags.
//
// CLI_WORKSPACE_EDITOR_FILE and CLI_WORKSPACE_PREVIEW_URL select what the two
// panes show.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/treykane/cli-workspace/internal/logging"
)

const (
	configDirName  = ".cli-workspace"
	configFileName = "config.json"
	stateFileName  = "state.json"
	envPrefix      = "CLI_WORKSPACE"
)

var log = logging.New("config")

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores user-defined workspace settings.
type Config struct {
	// EditorFile is the markdown file opened in the editor pane.
	EditorFile string `mapstructure:"editor_file"`
	// PreviewURL is what the preview pane shows. Empty means a live render
	// of the editor buffer.
	PreviewURL string `mapstructure:"preview_url"`
	// PreviewBaseURL resolves relative preview URLs.
	PreviewBaseURL string `mapstructure:"preview_base_url"`

	GlamourStyle             string            `mapstructure:"glamour_style"`
	FileWatchIntervalSeconds int               `mapstructure:"file_watch_interval_seconds"`
	Keybindings              map[string]string `mapstructure:"keybindings"`

	Divider DividerConfig `mapstructure:"divider"`
}

// DividerConfig configures the divider between the editor and preview panes.
// Sizes are terminal cells.
type DividerConfig struct {
	Axis    string `mapstructure:"axis"`
	Initial int    `mapstructure:"initial"`
	Min     int    `mapstructure:"min"`
	// Max caps the preview size. Zero means the cap comes from EditorMin.
	Max int `mapstructure:"max"`
	// EditorMin is the space always left to the editor pane.
	EditorMin int  `mapstructure:"editor_min"`
	Step      int  `mapstructure:"step"`
	ShiftStep int  `mapstructure:"shift_step"`
	Reverse   bool `mapstructure:"reverse"`
	Disabled  bool `mapstructure:"disabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EditorFile:               "~/workspace/README.md",
		GlamourStyle:             "dark",
		FileWatchIntervalSeconds: 2,
		Keybindings:              map[string]string{},
		Divider: DividerConfig{
			Axis:      "x",
			Initial:   50,
			Min:       30,
			EditorMin: 60,
			Step:      2,
			ShiftStep: 10,
			Reverse:   true,
		},
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG")); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// StatePath returns the path of the session state file, kept next to the
// config file.
func StatePath() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), stateFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads the config file (if present), applies environment and flag
// overrides, and validates the result. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Debug("config file missing, using defaults", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	editorFile, err := NormalizePath(cfg.EditorFile)
	if err != nil {
		return Config{}, fmt.Errorf("invalid editor_file: %w", err)
	}
	cfg.EditorFile = editorFile
	if cfg.Keybindings == nil {
		cfg.Keybindings = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("editor_file", cfg.EditorFile)
	v.Set("preview_url", cfg.PreviewURL)
	v.Set("preview_base_url", cfg.PreviewBaseURL)
	v.Set("glamour_style", cfg.GlamourStyle)
	v.Set("file_watch_interval_seconds", cfg.FileWatchIntervalSeconds)
	v.Set("keybindings", cfg.Keybindings)
	v.Set("divider.axis", cfg.Divider.Axis)
	v.Set("divider.initial", cfg.Divider.Initial)
	v.Set("divider.min", cfg.Divider.Min)
	v.Set("divider.max", cfg.Divider.Max)
	v.Set("divider.editor_min", cfg.Divider.EditorMin)
	v.Set("divider.step", cfg.Divider.Step)
	v.Set("divider.shift_step", cfg.Divider.ShiftStep)
	v.Set("divider.reverse", cfg.Divider.Reverse)
	v.Set("divider.disabled", cfg.Divider.Disabled)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Validate rejects settings the divider cannot work with.
func (c Config) Validate() error {
	switch c.Divider.Axis {
	case "x", "y", "horizontal", "vertical":
	default:
		return fmt.Errorf("%w: divider.axis %q (want x or y)", ErrInvalidConfig, c.Divider.Axis)
	}
	if c.Divider.Min < 0 {
		return fmt.Errorf("%w: divider.min %d is negative", ErrInvalidConfig, c.Divider.Min)
	}
	if c.Divider.Max > 0 && c.Divider.Max < c.Divider.Min {
		return fmt.Errorf("%w: divider.max %d is below divider.min %d", ErrInvalidConfig, c.Divider.Max, c.Divider.Min)
	}
	if c.Divider.Step <= 0 || c.Divider.ShiftStep <= 0 {
		return fmt.Errorf("%w: divider steps must be positive", ErrInvalidConfig)
	}
	if c.FileWatchIntervalSeconds < 0 {
		return fmt.Errorf("%w: file_watch_interval_seconds is negative", ErrInvalidConfig)
	}
	return nil
}

// NormalizePath expands a leading ~ and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

// RegisterFlags adds the command-line overrides Load understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("file", "f", "", "markdown file to open in the editor pane")
	flags.StringP("preview", "p", "", "preview source URL or path (default: live render of the editor)")
	flags.String("axis", "", "divider axis: x (side by side) or y (stacked)")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"editor_file":  "file",
		"preview_url":  "preview",
		"divider.axis": "axis",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("editor_file", d.EditorFile)
	v.SetDefault("preview_url", d.PreviewURL)
	v.SetDefault("preview_base_url", d.PreviewBaseURL)
	v.SetDefault("glamour_style", d.GlamourStyle)
	v.SetDefault("file_watch_interval_seconds", d.FileWatchIntervalSeconds)
	v.SetDefault("divider.axis", d.Divider.Axis)
	v.SetDefault("divider.initial", d.Divider.Initial)
	v.SetDefault("divider.min", d.Divider.Min)
	v.SetDefault("divider.max", d.Divider.Max)
	v.SetDefault("divider.editor_min", d.Divider.EditorMin)
	v.SetDefault("divider.step", d.Divider.Step)
	v.SetDefault("divider.shift_step", d.Divider.ShiftStep)
	v.SetDefault("divider.reverse", d.Divider.Reverse)
	v.SetDefault("divider.disabled", d.Divider.Disabled)
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
