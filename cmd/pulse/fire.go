package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var fireCmd = &cobra.Command{
	Use:   "fire EVENT[:arg[,arg...]]...",
	Short: "emit events through the subscription file",
	Long: `fire registers the subscription file's listeners and emits each
positional event in turn, printing deliveries in weight order.

An event argument is a bare key, optionally followed by a colon and
comma-separated arguments forwarded to the listeners:

  pulse fire --subs deploy.toml deploy:api,v42 rollback`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		em, err := loadEmitter(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		for _, spec := range args {
			key, eventArgs := splitEventSpec(spec)
			if delivered := em.Emit(key, eventArgs...); delivered == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no listeners for %q\n", key)
			}
		}
		return nil
	},
}

// splitEventSpec splits "key:a,b" into the emit key and forwarded arguments.
func splitEventSpec(spec string) (string, []any) {
	key, rest, ok := strings.Cut(spec, ":")
	if !ok || rest == "" {
		return key, nil
	}
	parts := strings.Split(rest, ",")
	args := make([]any, len(parts))
	for i, p := range parts {
		args[i] = p
	}
	return key, args
}
