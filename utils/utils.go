package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CSVContent builds a comma-separated file with a fixed header row and every
// field double-quoted, matching what the export screens expect.
func CSVContent(header []string, rows [][]string) string {
	var b strings.Builder
	writeCSVRow(&b, header)
	for _, row := range rows {
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// SendCSV serves content as a CSV attachment download.
func SendCSV(ctx *fiber.Ctx, filename, content string) error {
	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.SendString(content)
}
