// Package report renders run results for machine consumption: CSV
// exports of naming checks, JSON reconciliation reports, and shell
// scripts that create missing folders.
package report
