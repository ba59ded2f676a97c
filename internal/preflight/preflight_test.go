package preflight

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if result.Err != nil {
		t.Fatalf("expected nil error, got %v", result.Err)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), false)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
	if !errors.Is(result.Err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", result.Err)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
	if !errors.Is(result.Err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", result.Err)
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if result := CheckDirectoryAccess("test", dir, false); !result.Passed {
		t.Fatalf("read-only dir should pass a read check: %s", result.Detail)
	}
	result := CheckDirectoryAccess("test", dir, true)
	if result.Passed {
		t.Fatal("expected write check to fail on read-only dir")
	}
	if !errors.Is(result.Err, ErrNotWritable) {
		t.Fatalf("expected ErrNotWritable, got %v", result.Err)
	}
}

func TestRunAllAndFirstFailure(t *testing.T) {
	results := RunAll(t.TempDir(), true)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if _, failed := FirstFailure(results); failed {
		t.Fatal("expected no failure")
	}

	results = RunAll(filepath.Join(t.TempDir(), "missing"), false)
	failure, failed := FirstFailure(results)
	if !failed || failure.Name != "Photos directory" {
		t.Fatalf("expected photos directory failure, got %+v", failure)
	}
}
