// Package main provides the dice tray command-line client.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	trayctlcmd "github.com/louisbranch/dicetray/internal/cmd/trayctl"
	"github.com/louisbranch/dicetray/internal/platform/config"
)

func main() {
	cfg, err := trayctlcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Usagef("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := trayctlcmd.Run(ctx, cfg, os.Stdout); err != nil {
		if errors.Is(err, trayctlcmd.ErrUsage) {
			config.Usagef("Error: %v", err)
		}
		config.Exitf("Error: %v", err)
	}
}
