package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/ranked-carousel/internal/app"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
	"github.com/joho/godotenv"
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

const (
	envSource     = "RANKED_CAROUSEL_SOURCE"
	envURL        = "RANKED_CAROUSEL_URL"
	envDSN        = "RANKED_CAROUSEL_DSN"
	envFile       = "RANKED_CAROUSEL_FILE"
	envLimit      = "RANKED_CAROUSEL_LIMIT"
	envTimeout    = "RANKED_CAROUSEL_TIMEOUT"
	envAssetRoot  = "RANKED_CAROUSEL_ASSET_ROOT"
	envWidth      = "RANKED_CAROUSEL_WIDTH"
	envHeight     = "RANKED_CAROUSEL_HEIGHT"
	envShowFooter = "RANKED_CAROUSEL_FOOTER"
	envTrace      = "RANKED_CAROUSEL_TRACE"
	envLogFile    = "RANKED_CAROUSEL_LOG_FILE"
	envPrint      = "RANKED_CAROUSEL_PRINT"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultAssetRoot = "cars"
	dotenvFile       = ".env"
)

// Load parses configuration from CLI arguments and environment variables. A
// .env file in the working directory is applied first; real environment
// variables take precedence over it.
func Load() (Config, error) {
	return loadWithDotenv(dotenvFile, os.Args[1:])
}

func loadWithDotenv(path string, args []string) (Config, error) {
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return LoadArgs(args, os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("ranked-carousel", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	source := fs.String("source", envOrDefault(env, envSource, ranking.KindHTTP), "ranking source: http, postgres or file")
	url := fs.String("url", envOrDefault(env, envURL, ""), "ranking endpoint for the http source")
	dsn := fs.String("dsn", envOrDefault(env, envDSN, ""), "connection string for the postgres source")
	file := fs.String("file", envOrDefault(env, envFile, ""), "YAML or JSON envelope for the file source")
	limit := fs.Int("limit", envOrInt(env, envLimit, ranking.DefaultLimit), "number of ranked rows to request from postgres")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "deadline for the ranking request")
	assetRoot := fs.String("asset-root", envOrDefault(env, envAssetRoot, defaultAssetRoot), "directory prefix for resolved vehicle assets")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	printList := fs.Bool("print", envOrBool(env, envPrint, false), "print the ranked list as a table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *limit <= 0 {
		return Config{}, fmt.Errorf("limit must be > 0 (got %d)", *limit)
	}
	if *timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *timeout)
	}

	cfg := Config{
		App: app.Config{
			Source: ranking.Options{
				Kind:    strings.ToLower(strings.TrimSpace(*source)),
				URL:     *url,
				DSN:     *dsn,
				Path:    *file,
				Limit:   *limit,
				Timeout: *timeout,
			},
			AssetRoot:  *assetRoot,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Print:      *printList,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":    *source,
			"url":       *url,
			"dsn":       redactDSN(*dsn),
			"file":      *file,
			"limit":     strconv.Itoa(*limit),
			"timeout":   timeout.String(),
			"assetRoot": *assetRoot,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
			"print":     strconv.FormatBool(*printList),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Validate ensures the selected source has what it needs to connect.
func Validate(cfg Config) error {
	src := cfg.App.Source
	switch src.Kind {
	case ranking.KindHTTP:
		if strings.TrimSpace(src.URL) == "" {
			return fmt.Errorf("source http requires -url or %s", envURL)
		}
	case ranking.KindPostgres:
		if strings.TrimSpace(src.DSN) == "" {
			return fmt.Errorf("source postgres requires -dsn or %s", envDSN)
		}
	case ranking.KindFile:
		if strings.TrimSpace(src.Path) == "" {
			return fmt.Errorf("source file requires -file or %s", envFile)
		}
	default:
		return fmt.Errorf("%w: %q", ranking.ErrUnknownSource, src.Kind)
	}
	return nil
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

// Redacted returns a copy of cfg that is safe to write to the trace log.
func (c Config) Redacted() Config {
	c.App.Source.DSN = redactDSN(c.App.Source.DSN)
	return c
}

// redactDSN keeps credentials out of the trace log.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	return "<redacted>"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
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
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
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
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
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
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
