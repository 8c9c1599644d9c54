package main

import (
	"fmt"
	"os"

	"github.com/softwatch/astroreview/internal/app"
	"github.com/softwatch/astroreview/internal/config"
	"github.com/softwatch/astroreview/internal/logging"
	"github.com/softwatch/astroreview/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "astroreview: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "astroreview: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the resolved settings and the terminal the
// UI is about to draw on. Everything here comes from config resolution or
// a descriptor probe; nothing has been read from the host yet.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	return map[string]interface{}{
		"argv":         cfg.Args,
		"flags":        cfg.Flags,
		"width":        cfg.App.Width,
		"height":       cfg.App.Height,
		"transcript":   cfg.App.ShowTranscript,
		"pollInterval": cfg.App.PollInterval.String(),
		"trace":        cfg.Logging.Trace,
		"logFile":      cfg.Logging.FilePath,
		"terminal":     probeTerminal(),
	}
}

// terminalInfo covers the two descriptors the program uses: keys come in
// on stdin, frames go out on stdout. Size is only meaningful for stdout.
type terminalInfo struct {
	StdinTTY  bool   `json:"stdin_tty"`
	StdoutTTY bool   `json:"stdout_tty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	SizeError string `json:"size_error,omitempty"`
}

func probeTerminal() terminalInfo {
	info := terminalInfo{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if !info.StdoutTTY {
		return info
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		info.SizeError = err.Error()
		return info
	}
	info.Width = width
	info.Height = height
	return info
}
