package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"crate/internal/reconcile"
	"crate/internal/report"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var threshold float64
	var jsonOutput bool
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match catalog entities against on-disk folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKind(kind); err != nil {
				return err
			}
			if scriptPath != "" && kind == kindAll {
				return errors.New("--script needs a single kind (use --kind artist or --kind release)")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 || threshold > 1 {
					return errors.New("threshold must be between 0 and 1")
				}
			} else {
				threshold = cfg.Matching.Threshold
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := ctx.runContext(cmd, "reconcile")
			sets, err := ctx.gatherSets(runCtx, store, kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var jsonReports []report.ReconcileReport

			for _, set := range sets {
				folders, err := reconcile.ListFolders(set.base)
				if err != nil {
					return err
				}
				rep := reconcile.Reconcile(set.entities, folders, threshold)

				if jsonOutput {
					jsonReports = append(jsonReports, report.NewReconcileReport(ctx.runID, set.kind, set.base, rep))
				} else {
					printReconcileReport(cmd, set, rep, cfg.Matching.MaxCandidates)
				}

				if scriptPath != "" {
					missing := make([]string, 0, len(rep.Missing))
					for _, entity := range rep.Missing {
						missing = append(missing, entity.Canonical())
					}
					script := report.FolderScript(set.base, missing)
					if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
						return fmt.Errorf("write folder script: %w", err)
					}
					fmt.Fprintf(out, "Wrote folder script for %d missing %s folders to %s\n", len(missing), set.kind, scriptPath)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, jsonReports)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAll, "Entity kind to reconcile: artist, release, or all")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Similarity threshold for fuzzy suggestions (defaults to config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Write a shell script that creates the missing folders")
	return cmd
}

func printReconcileReport(cmd *cobra.Command, set entitySet, rep reconcile.Report, maxCandidates int) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s folders under %s\n", set.kind, set.base)
	fmt.Fprintln(out, renderTable(
		out,
		[]string{"METRIC", "VALUE"},
		[][]string{
			{"entities", strconv.Itoa(rep.Total)},
			{"exact matches", strconv.Itoa(rep.ExactMatches)},
			{"alternative matches", strconv.Itoa(rep.AlternativeMatches)},
			{"missing", strconv.Itoa(len(rep.Missing))},
			{"orphaned folders", strconv.Itoa(len(rep.Orphaned))},
			{"coverage", fmt.Sprintf("%.1f%%", rep.Coverage())},
		},
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(rep.Missing) > 0 {
		rows := make([][]string, 0, len(rep.Missing))
		for _, entity := range rep.Missing {
			rows = append(rows, []string{
				strconv.FormatInt(entity.ID, 10),
				entity.Name,
				entity.Canonical(),
			})
		}
		fmt.Fprintln(out, "Missing:")
		fmt.Fprintln(out, renderTable(
			out,
			[]string{"ID", "NAME", "EXPECTED FOLDER"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft},
		))
	}

	if len(rep.Orphaned) > 0 {
		fmt.Fprintf(out, "Orphaned folders (%d):\n", len(rep.Orphaned))
		for _, folder := range rep.Orphaned {
			fmt.Fprintf(out, "  %s\n", folder)
		}
	}

	if candidates := capCandidates(rep.Candidates, maxCandidates); len(candidates) > 0 {
		rows := make([][]string, 0, len(candidates))
		for _, cand := range candidates {
			rows = append(rows, []string{
				cand.Folder,
				strconv.FormatInt(cand.EntityID, 10),
				cand.EntityName,
				fmt.Sprintf("%.3f", cand.Score),
			})
		}
		fmt.Fprintln(out, "Suggestions:")
		fmt.Fprintln(out, renderTable(
			out,
			[]string{"FOLDER", "ID", "ENTITY", "SCORE"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
		))
	}
	fmt.Fprintln(out)
}

// capCandidates keeps at most limit suggestions per entity, preserving
// the score ordering.
func capCandidates(candidates []reconcile.Candidate, limit int) []reconcile.Candidate {
	if limit <= 0 {
		return candidates
	}
	counts := make(map[int64]int, len(candidates))
	kept := make([]reconcile.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if counts[cand.EntityID] >= limit {
			continue
		}
		counts[cand.EntityID]++
		kept = append(kept, cand)
	}
	return kept
}
