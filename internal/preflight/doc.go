// Package preflight provides readiness checks for the photos directory.
//
// The workflow runs them before scanning so that a missing directory or a
// read-only one fails the run before any file is touched. A dry run only
// needs read access; a live run also needs write access to rename entries.
package preflight
