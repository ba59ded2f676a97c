package workflow

import (
	"iosrename/internal/rename"
	"iosrename/internal/scan"
)

// Counts tallies the outcomes of one file class.
type Counts struct {
	Renamed int
	Planned int
	Skipped int
	Failed  int
}

// Total returns the number of files processed in the class.
func (c Counts) Total() int {
	return c.Renamed + c.Planned + c.Skipped + c.Failed
}

func (c *Counts) add(status rename.Status) {
	switch status {
	case rename.Renamed:
		c.Renamed++
	case rename.Planned:
		c.Planned++
	case rename.SkippedNoMetadata:
		c.Skipped++
	case rename.ParseFailed:
		c.Failed++
	}
}

// Summary describes a finished (or aborted) run.
type Summary struct {
	RunID   string
	Dir     string
	DryRun  bool
	Images  Counts
	Edited  Counts
	Videos  Counts
	Ignored int
}

// Counts returns the tally for kind.
func (s *Summary) Counts(kind scan.Kind) Counts {
	if c := s.counter(kind); c != nil {
		return *c
	}
	return Counts{}
}

// Totals sums the tallies of every class.
func (s *Summary) Totals() Counts {
	var total Counts
	for _, c := range []Counts{s.Images, s.Edited, s.Videos} {
		total.Renamed += c.Renamed
		total.Planned += c.Planned
		total.Skipped += c.Skipped
		total.Failed += c.Failed
	}
	return total
}

func (s *Summary) counter(kind scan.Kind) *Counts {
	switch kind {
	case scan.PlainImage:
		return &s.Images
	case scan.EditedImage:
		return &s.Edited
	case scan.Video:
		return &s.Videos
	default:
		return nil
	}
}

func (s *Summary) record(kind scan.Kind, status rename.Status) {
	if c := s.counter(kind); c != nil {
		c.add(status)
	}
}
