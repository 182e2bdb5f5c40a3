package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/logging"
	"github.com/jask/jaskfx/internal/rates"
	"github.com/jask/jaskfx/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	client := rates.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, logger)
	if cfg.Provider.UserAgent != "" {
		client.UserAgent = cfg.Provider.UserAgent
	}

	logger.Info("starting", "provider", cfg.Provider.BaseURL, "from", cfg.UI.DefaultFrom, "to", cfg.UI.DefaultTo)

	p := tea.NewProgram(tui.New(ctx, cfg, client, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		closer.Close()
		os.Exit(1)
	}
}
