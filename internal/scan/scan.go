package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrDirectoryNotFound reports a photos directory that does not exist, is not
// a directory, or cannot be listed.
var ErrDirectoryNotFound = errors.New("photos directory not found")

// SourceFile is a classified directory entry.
type SourceFile struct {
	Dir  string
	Name string
	Kind Kind
	ID   int
}

// Path joins the directory and name without cleaning, so reports show the
// directory exactly as it was given.
func (f SourceFile) Path() string {
	if f.Dir == "" {
		return f.Name
	}
	if os.IsPathSeparator(f.Dir[len(f.Dir)-1]) {
		return f.Dir + f.Name
	}
	return f.Dir + string(filepath.Separator) + f.Name
}

// Listing groups the classified entries of one directory. Each group is
// ordered by numeric counter, then name.
type Listing struct {
	Dir     string
	Images  []SourceFile
	Edited  []SourceFile
	Videos  []SourceFile
	Ignored []string
}

// Total returns the number of classified files.
func (l *Listing) Total() int {
	return len(l.Images) + len(l.Edited) + len(l.Videos)
}

// Scan lists dir (non-recursively) and classifies every regular entry.
func Scan(dir string, classifier *Classifier) (*Listing, error) {
	if classifier == nil {
		classifier = NewClassifier()
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: stat %s: %w", ErrDirectoryNotFound, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrDirectoryNotFound, dir, err)
	}

	listing := &Listing{Dir: dir}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			listing.Ignored = append(listing.Ignored, name)
			continue
		}
		kind, id := classifier.Classify(name)
		file := SourceFile{Dir: dir, Name: name, Kind: kind, ID: id}
		switch kind {
		case PlainImage:
			listing.Images = append(listing.Images, file)
		case EditedImage:
			listing.Edited = append(listing.Edited, file)
		case Video:
			listing.Videos = append(listing.Videos, file)
		default:
			listing.Ignored = append(listing.Ignored, name)
		}
	}

	sortByCounter(listing.Images)
	sortByCounter(listing.Edited)
	sortByCounter(listing.Videos)
	sort.Strings(listing.Ignored)
	return listing, nil
}

func sortByCounter(files []SourceFile) {
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ID != files[j].ID {
			return files[i].ID < files[j].ID
		}
		return files[i].Name < files[j].Name
	})
}
