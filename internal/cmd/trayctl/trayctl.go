// Package trayctl parses trayctl flags and drives a running dice tray.
package trayctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	dicetrayv1 "github.com/louisbranch/dicetray/api/gen/go/dicetray/v1"
	entrypoint "github.com/louisbranch/dicetray/internal/platform/cmd"
	"github.com/louisbranch/dicetray/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/dicetray/internal/platform/grpc"
	"github.com/louisbranch/dicetray/internal/platform/timeouts"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage: trayctl [flags] configure|roll|state|watch [args]")

const (
	commandConfigure = "configure"
	commandRoll      = "roll"
	commandState     = "state"
	commandWatch     = "watch"
)

// Config holds trayctl configuration. Env names carry the DICETRAY_ prefix.
type Config struct {
	Addr    string        `env:"TRAYCTL_ADDR"`
	Timeout time.Duration `env:"TRAYCTL_TIMEOUT" envDefault:"30s"`
	Locale  string        `env:"TRAYCTL_LOCALE"`
	Output  string        `env:"TRAYCTL_OUTPUT"  envDefault:"text"`
	Color   bool          `env:"TRAYCTL_COLOR"`

	Command string
	Args    []string
}

// ParseConfig parses environment, flags, and the subcommand into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Addr = discovery.OrLoopbackGRPCAddr(cfg.Addr, discovery.ServiceDiceTray)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Dice tray gRPC address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall command timeout (watch runs until it expires)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Preferred language for error messages, e.g. pt-BR")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output format: text, json or yaml")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Style text output for a terminal")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return Config{}, fmt.Errorf("%w: unknown output %q", ErrUsage, cfg.Output)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, ErrUsage
	}
	cfg.Command = strings.ToLower(strings.TrimSpace(rest[0]))
	cfg.Args = rest[1:]
	switch cfg.Command {
	case commandConfigure, commandRoll, commandState, commandWatch:
	default:
		return Config{}, fmt.Errorf("%w: unknown command %q", ErrUsage, rest[0])
	}
	return cfg, nil
}

// Run dials the tray, waiting for it to report healthy, and executes the
// configured command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTrayCtl, func(ctx context.Context) error {
		conn, err := platformgrpc.DialWithHealth(ctx, platformgrpc.DialConfig{
			Addr:    cfg.Addr,
			Service: dicetrayv1.DiceTrayService_ServiceDesc.ServiceName,
			Timeout: timeouts.GRPCDial,
			Logf:    log.Printf,
			Options: platformgrpc.DefaultClientDialOptions(),
		})
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				log.Printf("close tray connection: %v", closeErr)
			}
		}()

		if locale := strings.TrimSpace(cfg.Locale); locale != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "accept-language", locale)
		}
		return describeError(execute(ctx, dicetrayv1.NewDiceTrayServiceClient(conn), cfg, out))
	})
}

func execute(ctx context.Context, client dicetrayv1.DiceTrayServiceClient, cfg Config, out io.Writer) error {
	w := newWriter(out, cfg.Output, cfg.Color)
	switch cfg.Command {
	case commandConfigure:
		req, err := parsePatch(cfg.Args)
		if err != nil {
			return err
		}
		resp, err := client.Configure(ctx, req)
		if err != nil {
			return err
		}
		return w.state(resp.GetState())
	case commandRoll:
		forced, err := parseForced(cfg.Args)
		if err != nil {
			return err
		}
		resp, err := client.Roll(ctx, &dicetrayv1.RollRequest{ForcedValues: forced})
		if err != nil {
			return err
		}
		return w.outcome(resp)
	case commandState:
		resp, err := client.GetState(ctx, &dicetrayv1.GetStateRequest{})
		if err != nil {
			return err
		}
		return w.state(resp.GetState())
	case commandWatch:
		return watch(ctx, client, w)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}
}

func watch(ctx context.Context, client dicetrayv1.DiceTrayServiceClient, w writer) error {
	stream, err := client.WatchResults(ctx, &dicetrayv1.WatchResultsRequest{})
	if err != nil {
		return err
	}
	for {
		resp, err := stream.Recv()
		if err != nil {
			switch status.Code(err) {
			case codes.Canceled, codes.DeadlineExceeded:
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := w.result(resp.GetResult()); err != nil {
			return err
		}
	}
}

// parsePatch reads an optional -file preset, then -units, -default and
// -sides on top of it. Only fields that end up set are sent.
func parsePatch(args []string) (*dicetrayv1.ConfigureRequest, error) {
	fs := flag.NewFlagSet(commandConfigure, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "YAML preset with unit_count, default_value and sides")
	units := fs.Int("units", 0, "dice in the tray")
	def := fs.Int("default", 0, "resting face")
	sides := fs.Int("sides", 0, "faces per die")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	req := &dicetrayv1.ConfigureRequest{}
	if path := strings.TrimSpace(*file); path != "" {
		preset, err := loadPreset(path)
		if err != nil {
			return nil, err
		}
		req = preset.request()
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "units":
			req.UnitCount = proto.Int32(int32(*units))
		case "default":
			req.DefaultValue = proto.Int32(int32(*def))
		case "sides":
			req.Sides = proto.Int32(int32(*sides))
		}
	})
	if req.UnitCount == nil && req.DefaultValue == nil && req.Sides == nil {
		return nil, fmt.Errorf("%w: configure needs -file, -units, -default or -sides", ErrUsage)
	}
	return req, nil
}

// parseForced reads one forced face per live die; "_" leaves that die random.
func parseForced(args []string) ([]*dicetrayv1.ForcedValue, error) {
	if len(args) == 0 {
		return nil, nil
	}
	forced := make([]*dicetrayv1.ForcedValue, len(args))
	for i, arg := range args {
		forced[i] = &dicetrayv1.ForcedValue{}
		arg = strings.TrimSpace(arg)
		if arg == "_" || arg == "-" {
			continue
		}
		value, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: forced value %d %q is not a whole number", ErrUsage, i, arg)
		}
		forced[i].Value = proto.Int32(int32(value))
	}
	return forced, nil
}

// describeError prefers the server's localized message.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return fmt.Errorf("%s (%s)", localized.GetMessage(), st.Code())
		}
	}
	return err
}
