package exifmeta

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"iosrename/internal/testsupport"
)

func TestReadDateTimeOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_0001.JPG")
	testsupport.WriteJPEG(t, path, "2020:05:01 10:20:30")

	tags, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	value, ok := tags.Lookup(DateTimeOriginal)
	if !ok {
		t.Fatalf("expected %s tag, got %v", DateTimeOriginal, tags)
	}
	if value != "2020:05:01 10:20:30" {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestReadWithoutDateTimeOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_0002.JPG")
	testsupport.WriteJPEG(t, path, "")

	tags, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, ok := tags.Lookup(DateTimeOriginal); ok {
		t.Fatalf("did not expect %s, got %v", DateTimeOriginal, tags)
	}
	if _, ok := tags.Lookup("DateTimeDigitized"); !ok {
		t.Fatalf("expected the other EXIF tag to be present, got %v", tags)
	}
}

func TestReadWithoutEXIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_0003.JPG")
	testsupport.WriteJPEGWithoutEXIF(t, path)

	if _, err := Read(path); !errors.Is(err, ErrNoEXIF) {
		t.Fatalf("expected ErrNoEXIF, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.jpg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
