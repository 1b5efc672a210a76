// Package dicetray parses tray service flags and launches the service.
package dicetray

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/dicetray/internal/platform/cmd"
	"github.com/louisbranch/dicetray/internal/platform/discovery"
	"github.com/louisbranch/dicetray/internal/platform/timeouts"
	server "github.com/louisbranch/dicetray/internal/services/tray/app"
	"github.com/louisbranch/dicetray/internal/services/tray/domain"
)

// Config holds dicetray command configuration. Env names carry the
// DICETRAY_ prefix.
type Config struct {
	Port   int    `env:"PORT"`
	Addr   string `env:"ADDR"`
	DBPath string `env:"DB_PATH" envDefault:"data/dicetray.db"`

	UnitCount    int `env:"UNIT_COUNT"    envDefault:"2"`
	DefaultValue int `env:"DEFAULT_VALUE" envDefault:"6"`
	Sides        int `env:"SIDES"         envDefault:"6"`

	Debounce        time.Duration `env:"DEBOUNCE"`
	Animation       time.Duration `env:"ANIMATION"`
	AnimationJitter time.Duration `env:"ANIMATION_JITTER"`
	RollTimeout     time.Duration `env:"ROLL_TIMEOUT"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Port:            discovery.GRPCPort(discovery.ServiceDiceTray),
		Debounce:        timeouts.SettleDebounce,
		Animation:       timeouts.DieAnimation,
		AnimationJitter: timeouts.DieAnimationJitter,
		RollTimeout:     timeouts.Roll,
	}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The tray gRPC server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The tray gRPC listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite settings database; empty keeps settings in memory")
	fs.IntVar(&cfg.UnitCount, "units", cfg.UnitCount, "Dice in the tray until configured")
	fs.IntVar(&cfg.DefaultValue, "default", cfg.DefaultValue, "Resting face before the first roll")
	fs.IntVar(&cfg.Sides, "sides", cfg.Sides, "Faces per die")
	fs.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "Delay between the last settle and aggregation")
	fs.DurationVar(&cfg.Animation, "animation", cfg.Animation, "Base die animation time")
	fs.DurationVar(&cfg.AnimationJitter, "jitter", cfg.AnimationJitter, "Random extra animation time per die")
	fs.DurationVar(&cfg.RollTimeout, "roll-timeout", cfg.RollTimeout, "Longest a roll request waits for the dice")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr returns Addr when set, otherwise all interfaces on Port.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) serverConfig() server.Config {
	return server.Config{
		Addr:   c.ListenAddr(),
		DBPath: strings.TrimSpace(c.DBPath),
		Defaults: domain.Settings{
			UnitCount:    c.UnitCount,
			DefaultValue: c.DefaultValue,
			Sides:        c.Sides,
		},
		Debounce:    c.Debounce,
		Animation:   c.Animation,
		Jitter:      c.AnimationJitter,
		RollTimeout: c.RollTimeout,
	}
}

// Run starts the tray gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDiceTray, func(ctx context.Context) error {
		srv, err := server.New(ctx, cfg.serverConfig())
		if err != nil {
			return err
		}
		return srv.Serve(ctx)
	})
}
