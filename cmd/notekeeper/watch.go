package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	nklifecycle "github.com/aretw0/notekeeper/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print changes made to the stored keys by any process",
	Long: `Watch follows the data directory and prints one line per changed key until interrupted.
The optional pattern uses doublestar syntax and defaults to "*".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withStore(cmd, func(_ context.Context, store *notekeeper.Store) error {
			events, err := notekeeper.Watch(ctx, store, pattern)
			if err != nil {
				return err
			}

			src := nklifecycle.NewSource(events)
			if err := src.Start(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %q (Ctrl+C to stop)\n", pattern)
			for e := range src.Events() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", time.Now().Format(time.TimeOnly), e)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
