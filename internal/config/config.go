package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/record-picker/internal/app"
	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig          = "RECORD_PICKER_CONFIG"
	envURL             = "RECORD_PICKER_URL"
	envTitle           = "RECORD_PICKER_TITLE"
	envBatchSize       = "RECORD_PICKER_BATCH_SIZE"
	envRevealThreshold = "RECORD_PICKER_REVEAL_THRESHOLD"
	envTimeout         = "RECORD_PICKER_TIMEOUT"
	envRetries         = "RECORD_PICKER_RETRIES"
	envWidth           = "RECORD_PICKER_WIDTH"
	envHeight          = "RECORD_PICKER_HEIGHT"
	envShowFooter      = "RECORD_PICKER_FOOTER"
	envTrace           = "RECORD_PICKER_TRACE"
	envLogFile         = "RECORD_PICKER_LOG_FILE"
)

const (
	defaultTimeout         = 10 * time.Second
	defaultRetries         = 3
	defaultRevealThreshold = 1
)

// fileConfig mirrors the optional TOML file. Keys left out keep their
// defaults.
type fileConfig struct {
	URL             string `toml:"url"`
	Title           string `toml:"title"`
	BatchSize       int    `toml:"batch_size"`
	RevealThreshold int    `toml:"reveal_threshold"`
	Timeout         string `toml:"timeout"`
	Retries         int    `toml:"retries"`
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	Footer          bool   `toml:"footer"`
	Trace           bool   `toml:"trace"`
	LogFile         string `toml:"log_file"`
}

func defaults() fileConfig {
	return fileConfig{
		BatchSize:       batch.DefaultSize,
		RevealThreshold: defaultRevealThreshold,
		Timeout:         defaultTimeout.String(),
		Retries:         defaultRetries,
	}
}

// Load parses configuration from CLI arguments, environment variables and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	base := defaults()
	path := configPathFromArgs(args)
	if path == "" {
		path = envOrDefault(env, envConfig, "")
	}
	if path != "" {
		if err := readFile(path, &base); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("record-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	url := fs.String("url", envOrDefault(env, envURL, base.URL), "HTTP endpoint returning the JSON record list")
	title := fs.String("title", envOrDefault(env, envTitle, base.Title), "header shown above the list")
	batchSize := fs.Int("batch-size", envOrInt(env, envBatchSize, base.BatchSize), "rows revealed per batch")
	threshold := fs.Int("reveal-threshold", envOrInt(env, envRevealThreshold, base.RevealThreshold), "rows from the end at which the next batch is revealed")
	timeoutText := fs.String("timeout", envOrDefault(env, envTimeout, base.Timeout), "per-request HTTP timeout")
	retries := fs.Int("retries", envOrInt(env, envRetries, base.Retries), "HTTP retry attempts for transient failures")
	width := fs.Int("width", envOrInt(env, envWidth, base.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, base.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, base.Footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, base.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, base.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(*timeoutText))
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout %q: %w", *timeoutText, err)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			URL:             strings.TrimSpace(*url),
			Title:           *title,
			BatchSize:       *batchSize,
			RevealThreshold: *threshold,
			Timeout:         timeout,
			Retries:         *retries,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":          path,
			"url":             *url,
			"title":           *title,
			"batchSize":       strconv.Itoa(*batchSize),
			"revealThreshold": strconv.Itoa(*threshold),
			"timeout":         timeout.String(),
			"retries":         strconv.Itoa(*retries),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string, into *fileConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config file %s: %s", path, strict.String())
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// configPathFromArgs finds -config before the full flag set is built, since
// the file supplies that flag set's defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
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
	url := cfg.App.URL
	if url == "" {
		return fmt.Errorf("url is required (-url or %s)", envURL)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("url %q must use http or https", url)
	}
	if cfg.App.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be > 0 (got %d)", cfg.App.BatchSize)
	}
	if cfg.App.RevealThreshold < 0 {
		return fmt.Errorf("reveal-threshold must be >= 0 (got %d)", cfg.App.RevealThreshold)
	}
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.Retries < 0 {
		return fmt.Errorf("retries must be >= 0 (got %d)", cfg.App.Retries)
	}
	return nil
}
