package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/core"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the UI theme (light or dark)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			theme, err := notekeeper.Themes(store).Get(ctx, settings.SystemDark)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the UI theme",
	Args:  cobra.NoArgs,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Store the UI theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(core.ThemeLight), string(core.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := core.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			if err := notekeeper.Themes(store).Set(ctx, theme); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			theme, err := notekeeper.Themes(store).Toggle(ctx, settings.SystemDark)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeGetCmd.RunE = themeCmd.RunE
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)
}
