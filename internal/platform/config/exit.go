package config

import (
	"fmt"
	"os"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	exit(exitFailure, format, args...)
}

// Usagef reports a command-line misuse and exits with code 2.
func Usagef(format string, args ...any) {
	exit(exitUsage, format, args...)
}

func exit(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
