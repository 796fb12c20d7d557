// Command pasm runs, checks and dumps pseudo-assembly programs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/pasm/core"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	logFile   string
	trace     bool
	loopStart string
	loopEnd   string
)

var rootCmd = &cobra.Command{
	Use:   "pasm",
	Short: "A pseudo-assembly interpreter",
	Long: `Pasm tokenizes a pseudo-assembly source file, unrolls its loop region,
assembles the operations into instructions and executes them one per cycle.
Arithmetic results are collected on an output stack that is printed when the
program finishes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logFile, "log-file", "", "write JSON logs to this file instead of stderr")
	flags.BoolVar(&trace, "trace", false, "log every executed instruction")
	flags.StringVar(&loopStart, "loop-start", core.DefaultLoopMarkers.Start, "directive that opens the loop region")
	flags.StringVar(&loopEnd, "loop-end", core.DefaultLoopMarkers.End, "directive that closes the loop region")
}

func markers() core.LoopMarkers {
	return core.LoopMarkers{Start: loopStart, End: loopEnd}
}

func setupLogging() error {
	out := os.Stderr

	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}

		atexit.Register(func() {
			f.Sync()
			f.Close()
		})

		out = f
	}

	level := slog.LevelWarn
	if trace {
		level = core.LevelTrace
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
