package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crate/internal/logging"
	"crate/internal/migrate"
	"crate/internal/reconcile"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rename legacy folders to their canonical names",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKind(kind); err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := ctx.runContext(cmd, "migrate")
			sets, err := ctx.gatherSets(runCtx, store, kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, set := range sets {
				folders, err := reconcile.ListFolders(set.base)
				if err != nil {
					return err
				}
				plan := migrate.BuildPlan(folders, set.requests)

				if plan.Renames == 0 && plan.Conflicts == 0 {
					fmt.Fprintf(out, "%s folders under %s: nothing to migrate (%d correct, %d missing)\n",
						set.kind, set.base, plan.Correct, plan.Missing)
					continue
				}

				release, err := migrate.AcquireLock(set.base)
				if err != nil {
					return err
				}

				migrator := migrate.New(set.base, dryRun, logger)
				result := migrator.Apply(runCtx, plan)
				if unlockErr := release(); unlockErr != nil {
					logging.NewComponentLogger(logger, "migrate").Warn("failed to release migration lock", logging.Error(unlockErr))
				}

				verb := "renamed"
				if dryRun {
					verb = "would rename"
				}
				fmt.Fprintf(out, "%s folders under %s\n", set.kind, set.base)
				fmt.Fprintln(out, renderTable(
					out,
					[]string{"RESULT", "COUNT"},
					[][]string{
						{verb, strconv.Itoa(result.Renamed)},
						{"skipped", strconv.Itoa(result.Skipped)},
						{"failed", strconv.Itoa(result.Failed)},
						{"conflicts", strconv.Itoa(plan.Conflicts)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))

				for _, item := range plan.Items {
					if item.Status != migrate.StatusConflict {
						continue
					}
					fmt.Fprintf(out, "conflict: %s cannot move to %s (target occupied)\n", item.Current, item.Target)
				}
				for _, failure := range result.Failures {
					fmt.Fprintf(out, "error: %v\n", failure)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAll, "Entity kind to migrate: artist, release, or all")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned renames without touching the filesystem")
	return cmd
}
