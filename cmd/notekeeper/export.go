package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/aretw0/notekeeper/pkg/present"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole document as json, yaml or html",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			doc, err := store.Export(ctx)
			if err != nil {
				return err
			}

			if exportOut == "" {
				return writeExport(ctx, cmd.OutOrStdout(), store, doc)
			}

			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			if err := writeExport(ctx, f, store, doc); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		})
	},
}

// writeExport renders doc in exportFormat.
func writeExport(ctx context.Context, w io.Writer, store *notekeeper.Store, doc core.Document) error {
	switch exportFormat {
	case "json":
		data, err := core.EncodeDocument(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		data, err := core.MarshalYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "html":
		theme, err := notekeeper.Themes(store).Get(ctx, settings.SystemDark)
		if err != nil {
			return err
		}
		return present.RenderHTML(w, doc, theme, time.Now())
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or html)", exportFormat)
	}
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole document with a json or yaml export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, store *notekeeper.Store) error {
			if err := store.Import(ctx, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notebooks\n", len(doc.Notebooks))
			return nil
		})
	},
}

// readDocument decodes a file by extension; "-" reads JSON from stdin.
func readDocument(path string) (core.Document, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return core.Document{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return core.UnmarshalYAML(data)
	default:
		return core.DecodeDocument(data)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, yaml or html")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}
