package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
)

var notebookJSON bool

var notebookCmd = &cobra.Command{
	Use:     "notebook",
	Aliases: []string{"nb"},
	Short:   "Manage notebooks",
}

var notebookCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a notebook (blank names become Untitled)",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			nb, err := store.CreateNotebook(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", nb.ID, nb.Name)
			return nil
		})
	},
}

var notebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notebooks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			notebooks, err := store.ListNotebooks(ctx)
			if err != nil {
				return err
			}

			if notebookJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(notebooks)
			}

			for _, nb := range notebooks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d notes\n", nb.ID, nb.Name, len(nb.Notes))
			}
			return nil
		})
	},
}

var notebookRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a notebook",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			nb, err := store.UpdateNotebook(ctx, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", nb.ID, nb.Name)
			return nil
		})
	},
}

var notebookDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a notebook and all its notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			if err := store.DeleteNotebook(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notebook deleted: %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notebookCmd)
	notebookCmd.AddCommand(notebookCreateCmd, notebookListCmd, notebookRenameCmd, notebookDeleteCmd)
	notebookListCmd.Flags().BoolVar(&notebookJSON, "json", false, "Output in JSON format")
}
