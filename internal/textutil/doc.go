// Package textutil provides the text processing core for folder naming:
// slug sanitization, legacy slug variants, and string similarity.
//
// The primary use cases are:
//   - Deriving the canonical folder slug for an artist or release name
//   - Generating historical slug variants for backward-compatible matching
//   - Scoring pairwise similarity between folder names and entity names
//
// Sanitization is a fixed, ordered pipeline over static substitution tables.
// It is deterministic and total: any input degrades to the literal slug
// "unknown" rather than failing.
package textutil
