package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port int `env:"DICETRAY_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	UnitCount int           `env:"TEST_UNIT_COUNT" envDefault:"3"`
	Debounce  time.Duration `env:"TEST_DEBOUNCE" envDefault:"100ms"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICETRAY_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParsePrefixedEnvReadsPrefixedVariables(t *testing.T) {
	t.Setenv("DICETRAY_TEST_UNIT_COUNT", "5")
	t.Setenv("TEST_DEBOUNCE", "1s")

	var cfg prefixedTestConfig
	if err := ParsePrefixedEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.UnitCount != 5 {
		t.Fatalf("unit count = %d, want 5", cfg.UnitCount)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Fatalf("debounce = %v, want unprefixed variable ignored", cfg.Debounce)
	}
}
