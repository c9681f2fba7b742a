// Package main is the entry point for the taskdeck kiosk.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/paging"
	"taskdeck/internal/storage"
	"taskdeck/internal/tui"
)

const version = "0.3.0"

const helpText = `taskdeck - kiosk-style task tile dashboard for the terminal

USAGE:
    taskdeck [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --config PATH   Use an explicit config file
    --debug         Write a debug log next to the config file

CONFIGURATION:
    Config file: ~/.config/taskdeck/config.yaml

    To get started:
    1. Run 'taskdeck --init' to create a config template
    2. Point server.url at your task backend
    3. Run 'taskdeck'

KEYBINDINGS:
    Grid:
        tab/shift+tab   Move between tiles
        enter/space     Open the focused tile
        left/right      Previous/next page (drag or wheel works too)
        y               Copy tile summary
        r               Reload now
        q               Quit

    Dialogs:
        y/n             Answer a check-in
        up/down         Nudge the value
        enter           Save
        esc             Cancel
`

const configTemplate = `# taskdeck configuration
# Location: ~/.config/taskdeck/config.yaml

server:
  # Base URL of the task backend.
  url: "http://localhost:8000"
  # Optional bearer token.
  # token: ""

ui:
  # Tiles per page: 8 => 4x2, 10 => 5x2.
  page_size: 8
  # Polling interval in milliseconds.
  refresh_ms: 4000
  # Names this kiosk in the local state store.
  deployment_key: "kiosk"
  # Desktop notification when a goal is reached.
  notify: true

# Drag-to-page thresholds, in terminal cells.
swipe:
  min_cells: 8
  ratio: 1.2
  # Set to 0 to drop the time bound.
  max_duration_ms: 600

# Bounds for the numeric-entry slider. The text field may exceed them.
slider:
  min: 0
  max: 300
  step: 0.1
  coarse_step: 1
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		debugMode   bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Use an explicit config file")
	flag.BoolVar(&debugMode, "debug", false, "Write a debug log")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("taskdeck version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(configPath, debugMode)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point server.url at your task backend")
	fmt.Println("  2. Run 'taskdeck' to start")

	return nil
}

// newLogger builds the runtime logger. Without --debug everything is
// discarded; the kiosk screen is the only surface that matters.
func newLogger(debugMode bool) (*log.Logger, func(), error) {
	if !debugMode {
		return log.New(io.Discard), func() {}, nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "taskdeck",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	return logger, func() { f.Close() }, nil
}

// runApp starts the kiosk TUI.
func runApp(configPath string, debugMode bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger(debugMode)
	if err != nil {
		return err
	}
	defer closeLog()

	statePath, err := config.StatePath()
	if err != nil {
		return err
	}
	store, err := storage.Open(statePath)
	if err != nil {
		// A broken state store costs page persistence, not the kiosk.
		logger.Warn("state store unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	client := api.NewClient(cfg.Server.URL, cfg.Server.Token)

	// The typed-nil dance: a nil *storage.Store must become a nil
	// interface or the paginator would call through it.
	var pagingStore paging.Store
	if store != nil {
		pagingStore = store
	}

	app := tui.NewApp(client, cfg, pagingStore, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	logger.Info("starting", "server", cfg.Server.URL, "page_size", cfg.UI.PageSize)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
