package rename

import "fmt"

// Status is the result of processing one file.
type Status int

const (
	Renamed Status = iota
	Planned
	SkippedNoMetadata
	ParseFailed
)

func (s Status) String() string {
	switch s {
	case Renamed:
		return "renamed"
	case Planned:
		return "planned"
	case SkippedNoMetadata:
		return "skipped"
	case ParseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Decision is a computed source/destination pair.
type Decision struct {
	Source string
	Target string
	Suffix byte
}

// Outcome records what happened to one file. Decision is only set for
// Renamed and Planned.
type Outcome struct {
	Path     string
	Decision Decision
	Status   Status
	Err      error
}

// Line returns the human-readable report line for the outcome.
func (o Outcome) Line() string {
	switch o.Status {
	case Renamed, Planned:
		return fmt.Sprintf("%s -> %s", o.Decision.Source, o.Decision.Target)
	default:
		if o.Err != nil {
			return o.Err.Error()
		}
		return fmt.Sprintf("%s: %s", o.Path, o.Status)
	}
}

// Reporter receives one call per processed file.
type Reporter interface {
	Report(Outcome)
}

type nopReporter struct{}

func (nopReporter) Report(Outcome) {}
