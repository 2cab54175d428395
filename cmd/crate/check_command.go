package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"crate/internal/migrate"
	"crate/internal/reconcile"
	"crate/internal/report"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var exportPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare stored folder names against the naming contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKind(kind); err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := ctx.runContext(cmd, "check")
			sets, err := ctx.gatherSets(runCtx, store, kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var exportRows []report.CheckRow

			for _, set := range sets {
				folders, err := reconcile.ListFolders(set.base)
				if err != nil {
					return err
				}
				plan := migrate.BuildPlan(folders, set.requests)

				fmt.Fprintf(out, "%s folders under %s\n", set.kind, set.base)
				fmt.Fprintln(out, renderTable(
					out,
					[]string{"STATUS", "COUNT"},
					[][]string{
						{migrate.StatusCorrect.String(), strconv.Itoa(plan.Correct)},
						{migrate.StatusNeedsMigration.String(), strconv.Itoa(plan.Renames)},
						{migrate.StatusConflict.String(), strconv.Itoa(plan.Conflicts)},
						{migrate.StatusMissing.String(), strconv.Itoa(plan.Missing)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))

				if rows := actionableRows(plan); len(rows) > 0 {
					fmt.Fprintln(out, renderTable(
						out,
						[]string{"ID", "NAME", "CURRENT", "TARGET", "STATUS"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
					))
				}

				for _, invalid := range set.invalid {
					fmt.Fprintf(out, "warning: %v\n", invalid)
				}
				fmt.Fprintln(out)

				if exportPath != "" {
					exportRows = append(exportRows, report.CheckRows(set.kind, plan)...)
				}
			}

			if exportPath != "" {
				file, err := os.Create(exportPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer file.Close()
				if err := report.WriteCSV(file, exportRows); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(exportRows), exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAll, "Entity kind to check: artist, release, or all")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the full per-entity report to a CSV file")
	return cmd
}

func actionableRows(plan *migrate.Plan) [][]string {
	var rows [][]string
	for _, item := range plan.Items {
		if item.Status == migrate.StatusCorrect {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(item.EntityID, 10),
			item.Name,
			item.Current,
			item.Target,
			item.Status.String(),
		})
	}
	return rows
}
