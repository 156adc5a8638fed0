package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/splitpane/internal/config"
	"github.com/mmcdole/splitpane/internal/log"
	"github.com/mmcdole/splitpane/internal/store"
	"github.com/mmcdole/splitpane/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		writeConfig bool
		configPath  string
		layout      string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&writeConfig, "init", false, "write the default config file and exit")
	flag.StringVar(&configPath, "config", "", "config file (default: OS config dir)")
	flag.StringVar(&layout, "layout", "", "saved layout to restore and save to")
	flag.Parse()

	if showVersion {
		fmt.Printf("splitview %s\n", Version)
		return
	}

	if writeConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", config.ConfigFile())
		return
	}

	if err := run(configPath, layout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, layout string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("splitview needs an interactive terminal")
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfigFile(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if layout != "" {
		cfg.UI.Layout = layout
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting splitview", "version", Version, "panes", len(cfg.Panes))

	layouts, err := store.NewLayoutStore(cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("failed to open layout store: %w", err)
	}
	defer layouts.Close()

	model := tui.NewModel(cfg, layouts, logger)
	defer model.Workspace.Close()

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
