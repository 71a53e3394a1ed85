package cli

import (
	"io"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/spanmaze/core"
)

var tableFormats = []string{"table", "md", "csv"}

func checkTableFormat(format string) error {
	if !slices.Contains(tableFormats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

func formatWeight(w float64) string { return strconv.FormatFloat(w, 'g', -1, 64) }

// printEdges writes one row per edge followed by a total footer.
func printEdges(w io.Writer, format string, edges []core.Edge[string]) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "From", "To", "Weight"})

	var total float64
	for i, e := range edges {
		total += e.Weight()
		t.AppendRow(table.Row{i + 1, e.From(), e.To(), formatWeight(e.Weight())})
	}
	t.AppendFooter(table.Row{"", "", "Total", formatWeight(total)})

	switch format {
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		t.Render()
	}
}
