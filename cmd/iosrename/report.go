package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"iosrename/internal/rename"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// reportPrinter writes one line per outcome, colored by status when the
// output is a terminal.
type reportPrinter struct {
	mu       sync.Mutex
	w        io.Writer
	colorize bool
}

func newReportPrinter(w io.Writer, colorize bool) *reportPrinter {
	return &reportPrinter{w: w, colorize: colorize}
}

func (p *reportPrinter) Report(o rename.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, renderOutcome(o, p.colorize))
}

func renderOutcome(o rename.Outcome, colorize bool) string {
	line := o.Line()
	if !colorize {
		return line
	}
	if color := statusColor(o.Status); color != "" {
		return color + line + ansiReset
	}
	return line
}

func statusColor(status rename.Status) string {
	switch status {
	case rename.Renamed:
		return ansiGreen
	case rename.Planned:
		return ansiBlue
	case rename.SkippedNoMetadata:
		return ansiYellow
	case rename.ParseFailed:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
