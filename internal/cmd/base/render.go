package base

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mitchellh/cli"

	"github.com/matforge/recordlists-go/pkg/recordlists"
)

// RenderTable writes rows as an aligned table to the UI. Cells must not
// contain tabs or newlines.
func RenderTable(ui cli.Ui, headers []string, rows [][]string) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	writeRow(w, headers)
	for _, row := range rows {
		writeRow(w, row)
	}
	w.Flush()

	ui.Output(strings.TrimRight(buf.String(), "\n"))
}

func writeRow(w *tabwriter.Writer, cells []string) {
	w.Write([]byte(strings.Join(cells, "\t") + "\n"))
}

// FormatTime renders a timestamp for table output. The zero time renders
// as "-".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// Dash substitutes "-" for an empty cell value.
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var itemHeaders = []string{"DATABASE", "TABLE", "RECORD HISTORY", "VERSION"}

// RenderItems writes record list items as a table to the UI.
func RenderItems(ui cli.Ui, items []recordlists.RecordListItem) {
	if len(items) == 0 {
		ui.Output("No items")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		version := "-"
		if item.RecordVersion != nil {
			version = fmt.Sprintf("%d", *item.RecordVersion)
		}
		table := "-"
		if !item.TableGUID.IsZero() {
			table = item.TableGUID.String()
		}
		rows = append(rows, []string{
			item.DatabaseGUID.String(),
			table,
			item.RecordHistoryGUID.String(),
			version,
		})
	}
	RenderTable(ui, itemHeaders, rows)
}
