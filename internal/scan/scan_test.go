package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()
	tests := []struct {
		name   string
		kind   Kind
		number int
	}{
		{"IMG_0001.JPG", PlainImage, 1},
		{"IMG_0001.jpg", PlainImage, 1},
		{"IMG_1234.JpG", PlainImage, 1234},
		{"IMG_E0001.jpg", EditedImage, 1},
		{"IMG_E9999.JPG", EditedImage, 9999},
		{"IMG_0002.MOV", Video, 2},
		{"IMG_0002.mov", Video, 2},
		{"IMG_E0002.MOV", Unclassified, -1},
		{"IMG_001.JPG", Unclassified, -1},
		{"IMG_00001.JPG", Unclassified, -1},
		{"img_0001.jpg", Unclassified, -1},
		{"IMG_0001.JPG.aae", Unclassified, -1},
		{"IMG_0001.JPGX", Unclassified, -1},
		{"IMG_0001.HEIC", Unclassified, -1},
		{"IMG_0001.AAE", Unclassified, -1},
		{"IMG_ABCD.JPG", Unclassified, -1},
		{"20200501_102030i.JPG", Unclassified, -1},
		{".JPG", Unclassified, -1},
		{"", Unclassified, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, number := c.Classify(tc.name)
			if kind != tc.kind || number != tc.number {
				t.Fatalf("Classify(%q) = (%v, %d), want (%v, %d)", tc.name, kind, number, tc.kind, tc.number)
			}
		})
	}
}

func TestPlainPatternNeverCapturesEditedNames(t *testing.T) {
	c := NewClassifier()
	for _, name := range []string{"IMG_E0001.JPG", "IMG_E1234.jpg"} {
		if kind, _ := c.Classify(name); kind == PlainImage {
			t.Fatalf("%s classified as plain image", name)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	c := NewClassifier()
	if got := c.NormalizeExtension("IMG_0001.JPG"); got != ".jpg" {
		t.Fatalf("NormalizeExtension = %q", got)
	}
	if got := c.NormalizeExtension("README"); got != "" {
		t.Fatalf("NormalizeExtension without extension = %q", got)
	}
}

func TestScanGroupsAndOrders(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"IMG_0010.JPG", "IMG_0002.jpg", "IMG_E0010.JPG", "IMG_E0002.JPG",
		"IMG_0003.MOV", "IMG_0001.mov", "notes.txt", "IMG_0004.AAE",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "IMG_0005.JPG"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	listing, err := Scan(dir, NewClassifier())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	assertNames(t, "images", listing.Images, "IMG_0002.jpg", "IMG_0010.JPG")
	assertNames(t, "edited", listing.Edited, "IMG_E0002.JPG", "IMG_E0010.JPG")
	assertNames(t, "videos", listing.Videos, "IMG_0001.mov", "IMG_0003.MOV")
	if listing.Total() != 6 {
		t.Fatalf("Total = %d, want 6", listing.Total())
	}
	wantIgnored := []string{"IMG_0004.AAE", "IMG_0005.JPG", "notes.txt"}
	if len(listing.Ignored) != len(wantIgnored) {
		t.Fatalf("ignored = %v, want %v", listing.Ignored, wantIgnored)
	}
	for i, name := range wantIgnored {
		if listing.Ignored[i] != name {
			t.Fatalf("ignored = %v, want %v", listing.Ignored, wantIgnored)
		}
	}
	if got := listing.Images[0].Path(); got != filepath.Join(dir, "IMG_0002.jpg") {
		t.Fatalf("Path = %q", got)
	}
}

func TestScanDirectoryNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	if _, err := Scan(missing, nil); !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Scan(file, nil); !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound for a file, got %v", err)
	}
}

func assertNames(t *testing.T, label string, files []SourceFile, want ...string) {
	t.Helper()
	if len(files) != len(want) {
		t.Fatalf("%s: got %d files, want %d", label, len(files), len(want))
	}
	for i, name := range want {
		if files[i].Name != name {
			t.Fatalf("%s[%d] = %q, want %q", label, i, files[i].Name, name)
		}
	}
}

func TestSourceFilePathKeepsDirectorySpelling(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"photos", "photos/IMG_0001.JPG"},
		{"./photos/", "./photos/IMG_0001.JPG"},
		{"/data//photos", "/data//photos/IMG_0001.JPG"},
		{"", "IMG_0001.JPG"},
	}
	for _, tt := range tests {
		f := SourceFile{Dir: tt.dir, Name: "IMG_0001.JPG"}
		if got := f.Path(); got != filepath.FromSlash(tt.want) {
			t.Fatalf("Path() with dir %q = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
