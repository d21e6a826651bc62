package ingest

import (
	"encoding/json"
	"errors"
	"fmt"

	"patrimonio/pkg/models"
)

// ErrNoRowSequence means a JSON payload held neither a top-level array nor
// a "content"/"data" key exposing one.
var ErrNoRowSequence = errors.New("json payload exposes no row sequence")

// DecodeJSONRows extracts spreadsheet rows from a JSON payload that is
// either a top-level array of row objects or an object wrapping the array
// under "content" or "data".
func DecodeJSONRows(payload []byte) ([]models.SheetRow, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode json payload: %w", err)
	}

	arr := raw
	if len(raw) > 0 && raw[0] == '{' {
		var envelope struct {
			Content json.RawMessage `json:"content"`
			Data    json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("decode json envelope: %w", err)
		}
		switch {
		case len(envelope.Content) > 0 && envelope.Content[0] == '[':
			arr = envelope.Content
		case len(envelope.Data) > 0 && envelope.Data[0] == '[':
			arr = envelope.Data
		default:
			return nil, ErrNoRowSequence
		}
	}
	if len(arr) == 0 || arr[0] != '[' {
		return nil, ErrNoRowSequence
	}

	var rows []models.SheetRow
	if err := json.Unmarshal(arr, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}
