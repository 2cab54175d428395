// Package services defines the shared error taxonomy and context carriers
// used across the reconciliation phases.
//
// Errors are classified with sentinel markers so callers can distinguish
// fatal input errors (missing entity database, absent library directory)
// from recoverable per-entity failures that the batch skips and continues
// past.
package services
