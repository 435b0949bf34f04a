package report

import (
	"fmt"
	"strings"
)

// Markdown renders a compact terminal-friendly summary of the document:
// shape, per-column statistics, top correlations, and sample rows.
func (d *Document) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if d.DatasetName != "" {
		fmt.Fprintf(&b, "File: %s\n", d.DatasetName)
	}
	fmt.Fprintf(&b, "Rows: %d\nColumns: %d\n\n", d.Rows, d.Cols)

	if len(d.Summaries) > 0 {
		b.WriteString("[COLUMNS]\n")
		for _, s := range d.Summaries {
			fmt.Fprintf(&b, "- %s: n=%d, mean %s, std %s, min %s, q1 %s, median %s, q3 %s, max %s\n",
				s.Column, s.Count, num(s.Mean), num(s.Std), num(s.Min), num(s.Q1), num(s.Median), num(s.Q3), num(s.Max))
		}
		b.WriteString("\n")
	}

	if len(d.TopPairs) > 0 {
		b.WriteString("[CORRELATIONS]\n")
		for _, p := range d.TopPairs {
			fmt.Fprintf(&b, "- %s ~ %s: r=%.3f\n", p.A, p.B, p.R)
		}
		b.WriteString("\n")
	}

	if len(d.SampleRows) > 0 {
		b.WriteString("[SAMPLE ROWS]\n")
		b.WriteString("| " + strings.Join(d.SampleHeader, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(d.SampleHeader)) + "\n")
		for _, row := range d.SampleRows {
			b.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
		b.WriteString("\n")
	}

	if len(d.Notes) > 0 {
		b.WriteString("[NOTES]\n")
		for _, n := range d.Notes {
			b.WriteString("- " + n + "\n")
		}
	}
	return b.String()
}
