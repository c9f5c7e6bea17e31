package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/aretw0/notekeeper/pkg/present"
)

var (
	noteTitle string
	noteText  string
	noteJSON  bool
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage the notes of a notebook",
}

var noteCreateCmd = &cobra.Command{
	Use:   "create <notebook-id>",
	Short: "Add a note at the top of a notebook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			note, err := store.CreateNote(ctx, args[0], core.NoteInput{Title: noteTitle, Text: noteText})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", note.ID, note.Title)
			return nil
		})
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list <notebook-id>",
	Short: "List the notes of a notebook, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			notes, err := store.ListNotes(ctx, args[0])
			if err != nil {
				return err
			}

			if noteJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(notes)
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes")
				return nil
			}
			now := time.Now()
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.Title, present.RelativeTime(n.PostedOn, now))
			}
			return nil
		})
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Change the title and/or text of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch core.NotePatch
		if cmd.Flags().Changed("title") {
			patch.Title = &noteTitle
		}
		if cmd.Flags().Changed("text") {
			patch.Text = &noteText
		}
		if patch.Title == nil && patch.Text == nil {
			return fmt.Errorf("nothing to change: pass --title and/or --text")
		}

		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			note, err := store.UpdateNote(ctx, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", note.ID, note.Title)
			return nil
		})
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <notebook-id> <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			remaining, err := store.DeleteNote(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s (%d left)\n", args[1], len(remaining))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteCreateCmd, noteListCmd, noteEditCmd, noteDeleteCmd)

	for _, c := range []*cobra.Command{noteCreateCmd, noteEditCmd} {
		c.Flags().StringVar(&noteTitle, "title", "", "Note title")
		c.Flags().StringVar(&noteText, "text", "", "Note text (Markdown)")
	}
	noteListCmd.Flags().BoolVar(&noteJSON, "json", false, "Output in JSON format")
}
