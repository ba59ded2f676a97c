package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"iosrename/internal/scan"
	"iosrename/internal/workflow"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, footer []string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(values []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

func renderSummary(summary *workflow.Summary) string {
	headers := []string{"Class", "Renamed", "Planned", "Skipped", "Failed"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, 3)
	for _, kind := range []scan.Kind{scan.PlainImage, scan.EditedImage, scan.Video} {
		rows = append(rows, countsRow(kind.String(), summary.Counts(kind)))
	}
	footer := countsRow("total", summary.Totals())

	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n", summary.Dir)
	fmt.Fprintf(&b, "Dry run:   %s\n", yesNo(summary.DryRun))
	fmt.Fprintf(&b, "Ignored:   %d\n", summary.Ignored)
	b.WriteString(renderTable(headers, rows, footer, aligns))
	return b.String()
}

func countsRow(label string, c workflow.Counts) []string {
	return []string{
		label,
		strconv.Itoa(c.Renamed),
		strconv.Itoa(c.Planned),
		strconv.Itoa(c.Skipped),
		strconv.Itoa(c.Failed),
	}
}
