package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/treykane/cli-workspace/internal/app"
	"github.com/treykane/cli-workspace/internal/config"
	"github.com/treykane/cli-workspace/internal/logging"
)

func main() {
	flags := pflag.NewFlagSet("workspace", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	configPath := flags.String("config", "", "config file (default ~/.cli-workspace/config.json)")
	writeConfig := flags.Bool("write-config", false, "write the effective config to the config file and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		exit(err)
	}
	if *configPath != "" {
		// ConfigPath and StatePath both follow this variable.
		if err := os.Setenv("CLI_WORKSPACE_CONFIG", *configPath); err != nil {
			exit(err)
		}
	}

	cfg, err := config.Load(flags)
	if err != nil {
		exit(err)
	}
	if *writeConfig {
		msg, err := saveConfig(cfg)
		if err != nil {
			exit(err)
		}
		fmt.Println(msg)
		return
	}

	m, err := app.New(cfg)
	if err != nil {
		exit(err)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	logging.Close()
	if err != nil {
		exit(err)
	}
}

// saveConfig writes cfg to the config file and describes what it did.
func saveConfig(cfg config.Config) (string, error) {
	existed, err := config.Exists()
	if err != nil {
		return "", err
	}
	if err := config.Save(cfg); err != nil {
		return "", err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "", err
	}
	if existed {
		return "updated " + path, nil
	}
	return "created " + path, nil
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	logging.Close()
	os.Exit(1)
}
