// Package migrate plans and applies folder renames that bring the
// on-disk library in line with the canonical naming contract.
//
// Planning is pure: it classifies every entity against the current
// folder listing. Apply performs the renames, refusing to overwrite and
// continuing past per-item failures. Dry-run applies never touch the
// filesystem.
package migrate
