// Package main provides the tokei CLI: compare, sync, and render.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tokei-go/tokei/pkg/compare"
	"github.com/tokei-go/tokei/pkg/config"
	"github.com/tokei-go/tokei/pkg/db"
	"github.com/tokei-go/tokei/pkg/knownlist"
	"github.com/tokei-go/tokei/pkg/morph"
	"github.com/tokei-go/tokei/pkg/report"
	"github.com/tokei-go/tokei/pkg/syncer"
)

// Exit codes shared with the rest of the dashboard toolchain.
const (
	exitConfig   = 10
	exitDatabase = 12
	exitOutput   = 13
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var log = logrus.New()

// exitError carries the process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	rootCmd := &cobra.Command{
		Use:           "tokei",
		Short:         "Reconcile known-word statistics across exports, AnkiMorphs, and the tokei words db",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newCompareCmd(), newSyncCmd(), newRenderCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}

func newCompareCmd() *cobra.Command {
	var jsonOut string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare known-word counts across all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.UserRoot()
			cfg := config.Load(root, log)

			files := knownlist.Discover(root)
			ankiPath := config.AnkiMorphsDBPath(cfg.AnkiProfile)
			if ankiPath == "" {
				log.Warn("APPDATA is not set; cannot locate the AnkiMorphs db")
			}

			cmp := compare.New(cfg.AnkiMorphs.KnownIntervalDays, log)
			rep, err := cmp.Run(files, ankiPath, config.WordsDBPath(root))
			if err != nil {
				return &exitError{exitConfig, err}
			}

			report.RenderText(cmd.OutOrStdout(), rep)

			if jsonOut != "" {
				raw, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return &exitError{exitOutput, err}
				}
				if err := os.WriteFile(jsonOut, raw, 0644); err != nil {
					return &exitError{exitOutput, fmt.Errorf("write %s: %w", jsonOut, err)}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonOut, "json", "", "Also write the report as JSON to this path")
	return cmd
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Populate the words db from the known-word exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.UserRoot()
			files := knownlist.Discover(root)
			if len(files) == 0 {
				return &exitError{exitConfig, fmt.Errorf("no known-word exports under %s", root)}
			}

			wordsPath := config.WordsDBPath(root)
			if err := os.MkdirAll(filepath.Dir(wordsPath), 0755); err != nil {
				return &exitError{exitDatabase, err}
			}
			conn, err := db.OpenWords(wordsPath)
			if err != nil {
				return &exitError{exitDatabase, err}
			}
			defer conn.Close()

			lem, err := morph.NewLemmatizer()
			if err != nil {
				return &exitError{exitConfig, fmt.Errorf("init lemmatizer: %w", err)}
			}

			stats, err := syncer.New(conn, lem, log).Run(files)
			if err != nil {
				return &exitError{exitDatabase, err}
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Synced %d files: %d surfaces, %d lexemes, %d lemma links\n",
				stats.Files, stats.Surfaces, stats.Lexemes, stats.Links)
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <stats.json> <output.html>",
		Short: "Render the HTML dashboard from a stats JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := report.RenderHTMLFile(args[0], args[1]); err != nil {
				return &exitError{exitOutput, err}
			}
			return nil
		},
	}
}
