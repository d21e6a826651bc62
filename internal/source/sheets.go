package source

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"patrimonio/pkg/models"
)

// SheetsSource reads asset rows straight from the Google Sheets API,
// bypassing the published mirrors. It is an optional extra candidate for
// the asset dataset, used when credentials are configured.
type SheetsSource struct {
	service       *sheetsapi.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsSource builds the Sheets-backed source. Credentials come either
// inline as JSON or from a file path; exactly one must be set.
func NewSheetsSource(ctx context.Context, credentialsJSON, credentialsPath, spreadsheetID, readRange string) (*SheetsSource, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &SheetsSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (s *SheetsSource) Name() string {
	return "sheets:" + s.spreadsheetID
}

// Fetch reads the configured range; the first row is the header, every
// following row becomes a SheetRow. Short rows are padded with empty
// trailing columns, matching the CSV parser's contract.
func (s *SheetsSource) Fetch(ctx context.Context) ([]models.SheetRow, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", s.readRange, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		headers[i] = toString(cell)
	}

	rows := make([]models.SheetRow, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := models.NewSheetRow(nil)
		for j, header := range headers {
			value := ""
			if j < len(raw) {
				value = toString(raw[j])
			}
			row.Set(header, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
