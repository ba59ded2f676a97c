// Package workflow runs one rename pass over a photos directory.
//
// Run checks the directory, takes the per-directory lock for live runs,
// scans and classifies the entries, and then hands plain images, edited
// images, and videos to the renamer in that order. Within each class files
// are processed by their numeric counter, so an edited image always follows
// its original. That ordering is what makes the only-edited-photos merge
// (edited images renamed onto the original's name) deterministic.
//
// Missing metadata is a per-file skip. An unparsable timestamp is a per-file
// failure unless the run is strict, in which case it aborts the run. A
// filesystem rename failure always aborts.
package workflow
