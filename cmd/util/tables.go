package cmdutil

import (
	"fmt"

	"github.com/InVisionApp/tabular"
)

// ColumnHeader describes a short and long name for a column.
type ColumnHeader struct {
	ShortName, FullName string
}

// columnWidth returns the width of the widest cell in a column, header included.
func columnWidth(header ColumnHeader, rows [][]string, colIdx int) int {
	max := len(header.FullName)
	for _, row := range rows {
		if l := len(row[colIdx]); l > max {
			max = l
		}
	}
	return max
}

// FormatTable formats the provided headers and string table to display
// with sufficient padding to align columns.
func FormatTable(headers []ColumnHeader, rows [][]string) string {
	for _, row := range rows {
		if len(row) != len(headers) {
			panic("all rows must have a cell for each header")
		}
	}

	tab := tabular.New()
	for i, column := range headers {
		// Don't pad the last column
		var width int
		if i < len(headers)-1 {
			width = columnWidth(column, rows, i) + 2
		}
		tab.Col(column.ShortName, column.FullName, width)
	}

	table := tab.Parse("*")
	out := fmt.Sprintln(table.Header)

	values := make([]interface{}, len(headers))
	for _, row := range rows {
		for i, item := range row {
			values[i] = item
		}
		out += fmt.Sprintf(table.Format, values...)
	}
	return out
}
