// Package exifmeta reads the EXIF tag set of a single image file.
package exifmeta

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// DateTimeOriginal is the tag holding the original capture time.
const DateTimeOriginal = string(exif.DateTimeOriginal)

// ErrNoEXIF reports an image without a decodable EXIF block.
var ErrNoEXIF = errors.New("no exif data")

// Tags maps EXIF field names to their string form.
type Tags map[string]string

// Lookup returns the value stored under name.
func (t Tags) Lookup(name string) (string, bool) {
	value, ok := t[name]
	return value, ok
}

// Read opens path and collects its EXIF tags. Failure to open the file is
// returned as is; a file without usable EXIF yields ErrNoEXIF.
func Read(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if x == nil {
		if err == nil {
			err = errors.New("empty decode result")
		}
		return nil, fmt.Errorf("%w in %s: %v", ErrNoEXIF, path, err)
	}

	tags := Tags{}
	if walkErr := x.Walk(collector(tags)); walkErr != nil {
		return nil, fmt.Errorf("walk exif tags in %s: %w", path, walkErr)
	}
	return tags, nil
}

type collector Tags

func (c collector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil {
		return nil
	}
	if tag.Format() == tiff.StringVal {
		value, err := tag.StringVal()
		if err != nil {
			return nil
		}
		c[string(name)] = strings.TrimSpace(strings.TrimRight(value, "\x00"))
		return nil
	}
	c[string(name)] = tag.String()
	return nil
}
