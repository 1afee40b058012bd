// Package layout renders tabular results.
package layout

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/satishbabariya/olap-go/internal/core/xmla"
)

var policy = bluemonday.StrictPolicy()

// Rows returns the headers of a result set and its rows as values aligned to
// the header order. Cells missing from a row render as "".
func Rows(rs *xmla.ResultSet) ([]string, [][]string) {
	headers := rs.Headers()
	rows := make([][]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		values := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			values[i], _ = row.Get(col.Name)
		}
		rows = append(rows, values)
	}
	return headers, rows
}

// HTMLTable renders a result set as an HTML table. Markup in headers and
// values is stripped.
func HTMLTable(rs *xmla.ResultSet) string {
	headers, rows := Rows(rs)

	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	for _, h := range headers {
		sb.WriteString("<th>")
		sb.WriteString(policy.Sanitize(h))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, v := range row {
			sb.WriteString("<td>")
			sb.WriteString(policy.Sanitize(v))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

// Markdown renders a result set as a Markdown table.
func Markdown(rs *xmla.ResultSet) string {
	headers, rows := Rows(rs)
	if len(headers) == 0 {
		return ""
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, headers)
	sb.WriteString("|")
	for range headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeMarkdownRow(&sb, row)
	}
	return sb.String()
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(c, "|", `\|`))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
