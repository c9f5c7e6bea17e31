package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/internal/platform"
)

var (
	verbose  bool
	dataDir  string
	adapter  string
	readOnly bool

	settings platform.EnvConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Notebooks and notes kept in a single JSON document",
	Long: `notekeeper keeps notebooks of notes in one JSON document.
Every command re-reads the whole document and every change rewrites it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		cfg, err := platform.ParseEnv()
		if err != nil {
			return err
		}
		// Flags win over the environment.
		if cmd.Flags().Changed("dir") {
			cfg.Dir = dataDir
		}
		if cmd.Flags().Changed("adapter") {
			cfg.Adapter = adapter
		}
		if cmd.Flags().Changed("read-only") {
			cfg.ReadOnly = readOnly
		}
		settings = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default: nearest .notekeeper or ~/.notekeeper)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "fs", "Storage adapter: fs, sqlite, redis, memory")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Reject every change")
}

// openStore builds the store described by the resolved settings.
func openStore(ctx context.Context) (*notekeeper.Store, error) {
	uri := settings.RedisAddr
	if settings.Adapter != "redis" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		if uri, err = notekeeper.ResolveDataDir(settings.Dir, cwd); err != nil {
			return nil, err
		}
	}

	return notekeeper.New(ctx, uri,
		notekeeper.WithAdapter(settings.Adapter),
		notekeeper.WithAutoInit(true),
		notekeeper.WithReadOnly(settings.ReadOnly),
		notekeeper.WithRedisAuth(settings.RedisPassword, settings.RedisDB),
		notekeeper.WithLogger(slog.Default()),
	)
}

// withStore opens the store, runs fn and releases the backend.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, store *notekeeper.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer notekeeper.Close(store)
	return fn(ctx, store)
}
