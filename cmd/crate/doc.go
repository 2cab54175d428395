// Command crate audits and repairs the folder layout of a music
// collection against its SQLite catalog.
package main
