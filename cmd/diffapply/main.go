// diffapply prints the identifiers of a base list with a diff applied.
//
// Usage:
//
//	diffapply <file.yaml>             # one id per line
//	diffapply --table <file.yaml>     # table with position and source
//	diffapply -n 20 <file.yaml>       # first 20 ids
//
// The document lists the base sequence and the diff:
//
//	base: [1, 2, 3, 4]
//	added: [5]
//	removed: [2]
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
}
