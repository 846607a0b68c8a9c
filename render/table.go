package render

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatTable renders the headers and rows as an ASCII grid table. Missing
// headers or rows yield the no-data message rather than an empty frame.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return noData
	}

	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()

	return sb.String()
}
