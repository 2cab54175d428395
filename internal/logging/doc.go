// Package logging builds the shared slog logger.
//
// Console output uses a compact single-line handler; JSON output is
// available for machine consumption. Context carriers from the services
// package (entity ID, phase, run ID) are surfaced as structured fields.
package logging
