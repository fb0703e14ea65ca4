package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/ranked-carousel/internal/ranking"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source.Kind != ranking.KindHTTP {
		t.Fatalf("expected http source by default, got %q", cfg.App.Source.Kind)
	}
	if cfg.App.Source.Limit != ranking.DefaultLimit {
		t.Fatalf("expected limit %d, got %d", ranking.DefaultLimit, cfg.App.Source.Limit)
	}
	if cfg.App.Source.Timeout != defaultTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultTimeout, cfg.App.Source.Timeout)
	}
	if cfg.App.AssetRoot != defaultAssetRoot {
		t.Fatalf("expected asset root %q, got %q", defaultAssetRoot, cfg.App.AssetRoot)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		envSource + "=file",
		envFile + "=/tmp/env.yaml",
		envTimeout + "=3s",
		envShowFooter + "=true",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"-file", "/tmp/flag.yaml", "-width", "100"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source.Kind != ranking.KindFile {
		t.Fatalf("expected file source from env, got %q", cfg.App.Source.Kind)
	}
	if cfg.App.Source.Path != "/tmp/flag.yaml" {
		t.Fatalf("expected flag to win over env, got %q", cfg.App.Source.Path)
	}
	if cfg.App.Source.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.App.Source.Timeout)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled from env")
	}
	if cfg.App.Width != 100 || cfg.Flags["width"] != "100" {
		t.Fatalf("expected width 100, got %d/%s", cfg.App.Width, cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-limit", "0"}, nil); err == nil {
		t.Fatalf("expected error for zero limit")
	}
}

func TestLoadArgsRedactsDSN(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "postgres", "-dsn", "postgres://user:secret@db/cars"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["dsn"] != "<redacted>" {
		t.Fatalf("expected dsn redacted in flags, got %q", cfg.Flags["dsn"])
	}
	if cfg.App.Source.DSN == "" {
		t.Fatalf("expected dsn kept in app config")
	}
}

func TestValidateRequiresLocator(t *testing.T) {
	cases := map[string][]string{
		"http":     {"-source", "http"},
		"postgres": {"-source", "postgres"},
		"file":     {"-source", "file"},
	}
	for name, args := range cases {
		cfg, err := LoadArgs(args, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	cfg, _ := LoadArgs([]string{"-source", "http", "-url", "http://localhost/top5"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateUnknownSource(t *testing.T) {
	cfg, _ := LoadArgs([]string{"-source", "ftp"}, nil)
	if err := Validate(cfg); !errors.Is(err, ranking.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestLoadWithDotenvAppliesFile(t *testing.T) {
	t.Setenv(envURL, "")
	os.Unsetenv(envURL)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(envURL+"=http://ranked.local/top5\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, err := loadWithDotenv(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source.URL != "http://ranked.local/top5" {
		t.Fatalf("expected url from .env, got %q", cfg.App.Source.URL)
	}
}

func TestLoadWithDotenvMissingFileIsFine(t *testing.T) {
	if _, err := loadWithDotenv(filepath.Join(t.TempDir(), ".env"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadArgsPrintFromEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envPrint + "=1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.Print {
		t.Fatalf("expected print mode enabled from env")
	}
	if cfg.Flags["print"] != "true" {
		t.Fatalf("expected print flag recorded, got %q", cfg.Flags["print"])
	}
}

func TestRedactedHidesDSN(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "postgres", "-dsn", "postgres://u:p@db/x"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Redacted().App.Source.DSN; got != "<redacted>" {
		t.Fatalf("expected redacted dsn, got %q", got)
	}
	if cfg.App.Source.DSN != "postgres://u:p@db/x" {
		t.Fatalf("expected original config untouched, got %q", cfg.App.Source.DSN)
	}
}
