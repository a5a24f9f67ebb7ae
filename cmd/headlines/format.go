package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/headlines"
	"github.com/mattn/go-runewidth"
)

// maxTitleWidth is the display width at which article titles are cut in
// text output.
const maxTitleWidth = 100

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// writeText renders d for a terminal: a numbered article list followed by
// the keyword table and the dashboard metrics.
func writeText(w io.Writer, d *headlines.Digest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Source: %s\n", d.Source)
	if d.Meta.GeneratedAt != "" {
		fmt.Fprintf(&b, "Generated: %s (%s)\n", d.Meta.GeneratedAt, d.Meta.ExecutionTime)
	}

	fmt.Fprintf(&b, "\nArticles (%d)\n", len(d.Articles))
	for i, a := range d.Articles {
		fmt.Fprintf(&b, "%3d. [%s] %s\n", i+1, a.Category, runewidth.Truncate(a.Title, maxTitleWidth, "…"))
		fmt.Fprintf(&b, "     %s\n", a.Summary)
		fmt.Fprintf(&b, "     %s\n", a.URL)
	}

	b.WriteString("\nKeywords\n")
	rows := make([][]string, 0, len(d.Keywords))
	for _, k := range d.Keywords {
		rows = append(rows, []string{k.Word, strconv.Itoa(k.Count)})
	}
	for _, line := range table([]string{"Keyword", "Count"}, rows) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\nMetrics\n")
	metrics := [][]string{
		{"Most common category", d.Metrics.MostCommonCategory},
		{"Average headline length", strconv.FormatFloat(d.Metrics.AvgHeadlineLength, 'f', 1, 64) + " words"},
	}
	for _, line := range table([]string{"Metric", "Value"}, metrics) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// table lays out a markdown-style table, padding cells to the display
// width of the widest cell in each column.
func table(header []string, rows [][]string) []string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(runewidth.StringWidth(h), 3)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	line := func(cells []string, fill func(int, string) string) string {
		var sb strings.Builder
		sb.WriteString("|")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(" ")
			sb.WriteString(fill(widths[i], cell))
			sb.WriteString(" |")
		}
		return sb.String()
	}
	pad := func(width int, s string) string {
		return runewidth.FillRight(s, width)
	}
	dashes := func(width int, _ string) string {
		return strings.Repeat("-", width)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, line(header, pad), line(nil, dashes))
	for _, row := range rows {
		lines = append(lines, line(row, pad))
	}
	return lines
}
