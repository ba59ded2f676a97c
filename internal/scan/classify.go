package scan

import (
	"path/filepath"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
)

// Kind is the classification of a directory entry.
type Kind int

const (
	Unclassified Kind = iota
	PlainImage
	EditedImage
	Video
)

func (k Kind) String() string {
	switch k {
	case PlainImage:
		return "image"
	case EditedImage:
		return "edited image"
	case Video:
		return "video"
	default:
		return "unclassified"
	}
}

const (
	imageExtension = ".jpg"
	videoExtension = ".mov"
)

// Classifier holds the compiled filename patterns. It is immutable after
// NewClassifier and safe to share.
type Classifier struct {
	plainStem  *regexp.Regexp
	editedStem *regexp.Regexp
}

// NewClassifier compiles the filename patterns once.
func NewClassifier() *Classifier {
	return &Classifier{
		plainStem:  regexp.MustCompile(`^IMG_([0-9]{4})$`),
		editedStem: regexp.MustCompile(`^IMG_E([0-9]{4})$`),
	}
}

// NormalizeExtension returns the case-folded extension of name, including the
// leading dot. A Caser carries state, so one is built per call.
func (c *Classifier) NormalizeExtension(name string) string {
	return cases.Fold().String(filepath.Ext(name))
}

// Classify returns the kind of name and the numeric counter embedded in it.
// The counter is -1 for unclassified names.
func (c *Classifier) Classify(name string) (Kind, int) {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	folded := c.NormalizeExtension(name)

	switch folded {
	case imageExtension:
		if m := c.plainStem.FindStringSubmatch(stem); m != nil {
			return PlainImage, counter(m[1])
		}
		if m := c.editedStem.FindStringSubmatch(stem); m != nil {
			return EditedImage, counter(m[1])
		}
	case videoExtension:
		if m := c.plainStem.FindStringSubmatch(stem); m != nil {
			return Video, counter(m[1])
		}
	}
	return Unclassified, -1
}

func counter(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}
