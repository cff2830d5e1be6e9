package catalog

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8090 {
		t.Fatalf("expected default port 8090, got %d", cfg.Port)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("REGISTRAR_CATALOG_HTTP_PORT", "9190")

	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9191"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9191 {
		t.Fatalf("expected port override 9191, got %d", cfg.Port)
	}
}
