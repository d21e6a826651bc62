package ingest

import (
	"errors"
	"strings"

	"patrimonio/pkg/models"
)

var (
	// ErrHTMLResponse means the endpoint replied with an error page instead
	// of data.
	ErrHTMLResponse = errors.New("response is an HTML page, not CSV")
	// ErrTooFewLines means the payload has no data rows (header only, or
	// empty).
	ErrTooFewLines = errors.New("csv has fewer than 2 lines")
)

// ParseCSV splits published-sheet text into ordered rows.
//
// The published mirrors are inconsistent, so the contract is deliberately
// tolerant: the delimiter is autodetected from the header line (";" wins
// over ","), fields are trimmed and stripped of one surrounding quote
// layer, blank lines are skipped and short rows are padded with empty
// trailing columns. Embedded escaped quotes inside a field are not
// handled; the upstream sheets never produce them.
func ParseCSV(text string) ([]models.SheetRow, error) {
	if strings.Contains(text, "<html") || strings.Contains(text, "<!DOCTYPE") ||
		strings.Contains(text, "Sorry, the file you have requested does not exist") {
		return nil, ErrHTMLResponse
	}

	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, ErrTooFewLines
	}

	headerLine := lines[0]
	delimiter := ","
	if strings.Contains(headerLine, ";") {
		delimiter = ";"
	}

	rawHeaders := strings.Split(headerLine, delimiter)
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = cleanField(h)
	}

	var rows []models.SheetRow
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, delimiter)
		row := models.NewSheetRow(nil)
		for j, header := range headers {
			value := ""
			if j < len(values) {
				value = cleanField(values[j])
			}
			row.Set(header, value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cleanField trims whitespace and strips one layer of surrounding double
// quotes when present on both ends.
func cleanField(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = field[1 : len(field)-1]
	}
	return field
}
