package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/present"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the store as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			// Loads the mirror so the counts are current.
			if _, err := store.ListNotebooks(ctx); err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(store.State())
		})
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the greeting and today's date",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		now := timeNow()
		fmt.Fprintln(cmd.OutOrStdout(), present.Greeting(now.Hour()))
		fmt.Fprintln(cmd.OutOrStdout(), present.CurrentDate(now))
	},
}

// timeNow is replaced in tests.
var timeNow = time.Now

func init() {
	rootCmd.AddCommand(stateCmd, greetCmd)
}
