package main

import (
	"testing"
	"time"

	"github.com/softwatch/astroreview/internal/app"
	"github.com/softwatch/astroreview/internal/config"
)

func TestStartupTracePayloadCarriesResolvedSettings(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:          80,
			Height:         24,
			ShowTranscript: true,
			PollInterval:   2 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"width": "80", "poll": "2s"},
		Args:  []string{"-width", "80"},
	}

	payload := startupTracePayload(cfg)

	if payload["width"] != 80 || payload["height"] != 24 {
		t.Fatalf("dimensions missing from payload: %v, %v", payload["width"], payload["height"])
	}
	if payload["pollInterval"] != "2s" {
		t.Fatalf("expected poll interval 2s, got %v", payload["pollInterval"])
	}
	if payload["transcript"] != true {
		t.Fatalf("expected transcript true, got %v", payload["transcript"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" {
		t.Fatalf("logging settings missing: %v, %v", payload["trace"], payload["logFile"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["poll"] != "2s" {
		t.Fatalf("expected resolved flags in payload, got %v", payload["flags"])
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal probe in payload")
	}
}

func TestProbeTerminalReportsSizeOnlyForRealStdout(t *testing.T) {
	info := probeTerminal()
	if !info.StdoutTTY && (info.Width != 0 || info.Height != 0 || info.SizeError != "") {
		t.Fatalf("size fields should stay zero without a stdout tty: %+v", info)
	}
}
