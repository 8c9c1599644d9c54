package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/softwatch/astroreview/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Settings is the shape of the optional TOML settings file. File values sit
// below environment variables and flags in precedence.
type Settings struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Transcript *bool  `toml:"transcript"`
	Poll       string `toml:"poll"`
	Trace      *bool  `toml:"trace"`
	LogFile    string `toml:"log_file"`
}

const (
	envWidth      = "ASTROREVIEW_WIDTH"
	envHeight     = "ASTROREVIEW_HEIGHT"
	envTranscript = "ASTROREVIEW_TRANSCRIPT"
	envPoll       = "ASTROREVIEW_POLL"
	envTrace      = "ASTROREVIEW_TRACE"
	envLogFile    = "ASTROREVIEW_LOG_FILE"
	envSettings   = "ASTROREVIEW_SETTINGS"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	settingsPath := settingsPathFromArgs(args)
	if settingsPath == "" {
		settingsPath = env[envSettings]
	}
	file, err := loadSettings(settingsPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("astroreview", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "viewport height in rows (0 uses terminal height)")
	transcript := fs.Bool("transcript", envOrBool(env, envTranscript, boolOr(file.Transcript, true)), "show the spoken transcript pane")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, durationOr(file.Poll, 0)), "backend poll interval (0 uses the built-in default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	fs.String("settings", settingsPath, "path to a TOML settings file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *poll < 0 {
		return Config{}, fmt.Errorf("poll interval must be >= 0 (got %s)", *poll)
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			ShowTranscript: *transcript,
			PollInterval:   *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"transcript": strconv.FormatBool(*transcript),
			"poll":       poll.String(),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
			"settings":   settingsPath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// settingsPathFromArgs pre-scans for the settings flag so the file can seed
// the defaults of the real parse.
func settingsPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, prefix := range []string{"--settings", "-settings"} {
			if arg == prefix {
				if i+1 < len(args) {
					return args[i+1]
				}
				return ""
			}
			if strings.HasPrefix(arg, prefix+"=") {
				return strings.TrimPrefix(arg, prefix+"=")
			}
		}
	}
	return ""
}

func loadSettings(path string) (Settings, error) {
	var s Settings
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return s, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func durationOr(v string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
