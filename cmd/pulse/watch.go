package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATH...",
	Short: "republish filesystem events through the emitter",
	Long: `watch bridges fsnotify into the emitter: file changes under the
watched paths are emitted as fs.create, fs.write, fs.remove, fs.rename and
fs.chmod with the affected path as the argument, until interrupted.

Subscription names for these events are opaque keys (the suffix after the
dot is not a numeral), so they always run at the default weight.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	em, err := loadEmitter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range args {
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			em.Emit(fsEventKey(ev.Op), ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "watch error:", err)
		case <-signals:
			return nil
		}
	}
}

// fsEventKey maps an fsnotify operation to its emitter key.
func fsEventKey(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "fs.create"
	case op.Has(fsnotify.Write):
		return "fs.write"
	case op.Has(fsnotify.Remove):
		return "fs.remove"
	case op.Has(fsnotify.Rename):
		return "fs.rename"
	case op.Has(fsnotify.Chmod):
		return "fs.chmod"
	default:
		return "fs.other"
	}
}
