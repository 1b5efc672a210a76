package dicetray

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("dicetray", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8095 {
		t.Fatalf("expected default port 8095, got %d", cfg.Port)
	}
	if cfg.ListenAddr() != ":8095" {
		t.Fatalf("listen addr = %q, want :8095", cfg.ListenAddr())
	}
	if cfg.UnitCount != 2 || cfg.DefaultValue != 6 || cfg.Sides != 6 {
		t.Fatalf("tray defaults = %d/%d/%d", cfg.UnitCount, cfg.DefaultValue, cfg.Sides)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Fatalf("debounce = %v, want 100ms", cfg.Debounce)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("DICETRAY_UNIT_COUNT", "5")
	t.Setenv("DICETRAY_DEBOUNCE", "250ms")

	fs := flag.NewFlagSet("dicetray", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.UnitCount != 5 {
		t.Fatalf("unit count = %d, want 5", cfg.UnitCount)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Fatalf("debounce = %v, want 250ms", cfg.Debounce)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("dicetray", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "127.0.0.1:9999", "-sides", "20", "-animation", "1s", "-db-path", ""})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ListenAddr() != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.ListenAddr())
	}
	srv := cfg.serverConfig()
	if srv.Defaults.Sides != 20 || srv.Animation != time.Second || srv.DBPath != "" {
		t.Fatalf("server config = %+v", srv)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("DICETRAY_SIDES", "many")
	fs := flag.NewFlagSet("dicetray", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}
