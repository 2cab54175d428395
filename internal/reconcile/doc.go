// Package reconcile compares catalog entities against the folders that
// exist on disk.
//
// Matching runs in two passes. The exact pass consumes folders that
// equal one of an entity's accepted slugs. The fuzzy pass then scores
// the leftover folders against the still-missing entities and proposes
// candidates above the configured similarity threshold.
package reconcile
