package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"crate/internal/library"
	"crate/internal/reconcile"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Library inspection utilities",
	}
	libraryCmd.AddCommand(newLibraryHealthCommand(ctx))
	libraryCmd.AddCommand(newLibraryInitCommand(ctx))
	return libraryCmd
}

func newLibraryInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty catalog database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Paths.Database); err == nil {
				return fmt.Errorf("catalog already exists at %s", cfg.Paths.Database)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("check catalog path: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Paths.Database), 0o755); err != nil {
				return fmt.Errorf("create catalog directory: %w", err)
			}
			store, err := library.OpenOrCreate(cfg.Paths.Database)
			if err != nil {
				return err
			}
			if err := store.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created empty catalog at %s\n", cfg.Paths.Database)
			return nil
		},
	}
}

func newLibraryHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Verify the catalog database and library directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			healthy := true

			store, err := ctx.openStore()
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("catalog", statusError, err.Error(), colorize))
				healthy = false
			} else {
				defer store.Close()
				health, err := store.CheckHealth(ctx.runContext(cmd, "health"))
				if err != nil {
					fmt.Fprintln(out, renderStatusLine("catalog", statusError, err.Error(), colorize))
					healthy = false
				} else {
					fmt.Fprintln(out, renderStatusLine("catalog", statusOK,
						fmt.Sprintf("%s (%d artists, %d releases)", health.Path, health.Artists, health.Releases), colorize))
				}
			}

			for _, probe := range []struct {
				label string
				base  string
			}{
				{"artist folders", cfg.ArtistsPath()},
				{"release folders", cfg.ReleasesPath()},
			} {
				folders, err := reconcile.ListFolders(probe.base)
				if err != nil {
					fmt.Fprintln(out, renderStatusLine(probe.label, statusError, err.Error(), colorize))
					healthy = false
					continue
				}
				fmt.Fprintln(out, renderStatusLine(probe.label, statusOK,
					fmt.Sprintf("%s (%d folders)", probe.base, len(folders)), colorize))
			}

			if !healthy {
				return fmt.Errorf("library health check failed")
			}
			return nil
		},
	}
}
