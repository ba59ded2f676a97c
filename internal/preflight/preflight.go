package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

var (
	// ErrNotDirectory reports a path that exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotReadable reports a directory that cannot be listed.
	ErrNotReadable = errors.New("not readable")
	// ErrNotWritable reports a directory whose entries cannot be renamed.
	ErrNotWritable = errors.New("not writable")
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	Err    error
}

// CheckDirectoryAccess verifies that path is a directory that can be listed
// and, when writable is set, that entries inside it can be renamed.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path), Err: err}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Err: err}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path), Err: ErrNotDirectory}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot list: %v)", path, err), Err: fmt.Errorf("%w: %w", ErrNotReadable, err)}
	}
	if !writable {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
	}
	if err := unix.Access(path, unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot rename entries: %v)", path, err), Err: fmt.Errorf("%w: %w", ErrNotWritable, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// RunAll executes the checks a run over dir needs. Dry runs only need to
// read the directory.
func RunAll(dir string, dryRun bool) []Result {
	return []Result{CheckDirectoryAccess("Photos directory", dir, !dryRun)}
}

// FirstFailure returns the first failed result, if any.
func FirstFailure(results []Result) (Result, bool) {
	for _, r := range results {
		if !r.Passed {
			return r, true
		}
	}
	return Result{}, false
}
