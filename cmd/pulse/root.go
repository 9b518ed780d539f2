package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rlange/pulse/emitter"
	"github.com/rlange/pulse/internal/subconf"
	"github.com/rlange/pulse/weight"
)

var (
	subsPath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "weighted event dispatch from the command line",
	Long: `pulse drives a weighted publish/subscribe emitter from the shell.

Subscriptions live in a TOML file; each one names an event with an optional
weight suffix (deploy.9, deploy.1.5, deploy.Infinity) and an action line to
print when the event fires. Delivery follows the weights: heavier listeners
first, unweighted listeners last.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&subsPath, "subs", "subs.toml", "subscription file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.AddCommand(fireCmd)
	rootCmd.AddCommand(watchCmd)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEmitter builds an emitter with every declared subscription registered
// as a printing listener on out.
func loadEmitter(out io.Writer) (*emitter.Emitter, error) {
	file, err := subconf.Load(subsPath)
	if err != nil {
		return nil, err
	}

	var opts []emitter.Option
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, emitter.WithLogger(logger))
	}

	em := emitter.New(opts...)
	for _, sub := range file.Subscriptions {
		// Validate already ran in Load; parse again for the bare key the
		// action template renders with.
		parsed, err := weight.ParseName(sub.Name)
		if err != nil {
			return nil, err
		}

		l := emitter.Func(func(args ...any) {
			fmt.Fprintln(out, sub.Render(parsed.Key, args))
		})

		if sub.Once {
			err = em.Once(sub.Name, l)
		} else {
			err = em.On(sub.Name, l)
		}
		if err != nil {
			return nil, err
		}
	}
	return em, nil
}
