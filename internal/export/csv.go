package export

import (
	"strings"

	"github.com/ailab/timesheetgen/internal/model"
)

// CSVFilename is the download name for the delimited-text export.
const CSVFilename = "timesheet.csv"

// CSV renders the flat projection as comma-delimited text with a
// header row and one row per entry.
func CSV(entries []model.Entry) string {
	var b strings.Builder
	writeCSVRow(&b, Headers)
	for _, e := range entries {
		writeCSVRow(&b, Row(e))
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvEscape(f))
	}
	b.WriteByte('\n')
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
