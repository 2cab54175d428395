// Package library reads the SQLite entity catalog and defines the
// canonical folder naming contract for artists and releases.
package library
