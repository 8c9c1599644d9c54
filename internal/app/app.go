package app

import (
	"errors"
	"time"

	"github.com/softwatch/astroreview/internal/backend"
	"github.com/softwatch/astroreview/internal/host/sim"
	"github.com/softwatch/astroreview/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPollInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	ShowTranscript bool
	PollInterval   time.Duration
}

// Run bootstraps and executes the Bubble Tea program against the simulated
// host game.
func Run(cfg Config) error {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	game := sim.NewGame()
	watcher := backend.NewWatcher(game, interval)
	defer watcher.Stop()
	model := ui.NewModel(game, watcher, cfg.Width, cfg.Height, cfg.ShowTranscript)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
