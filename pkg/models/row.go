package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SheetRow is one raw spreadsheet row: column name to cell text, with the
// source column order retained. Rows come out of the CSV parser, the JSON
// endpoint or the Sheets API, and feed both the asset normalizer and the
// schema-free stock dataset.
type SheetRow struct {
	Columns []string
	Values  map[string]string
}

// NewSheetRow builds an empty row over the given column order.
func NewSheetRow(columns []string) SheetRow {
	return SheetRow{
		Columns: columns,
		Values:  make(map[string]string, len(columns)),
	}
}

// Get returns the value of a column, or "" when the column is absent.
func (r SheetRow) Get(column string) string {
	return r.Values[column]
}

// Set stores a value, registering the column on first write.
func (r *SheetRow) Set(column, value string) {
	if r.Values == nil {
		r.Values = make(map[string]string)
	}
	if _, seen := r.Values[column]; !seen {
		r.Columns = append(r.Columns, column)
	}
	r.Values[column] = value
}

// MarshalJSON emits the row as an object with keys in source column order.
func (r SheetRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a row, recovering column order by scanning the raw
// object tokens; plain map decoding would lose it. Non-string cell values
// (numbers, booleans, null) are kept as their text form.
func (r *SheetRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sheet row must be a JSON object")
	}

	r.Columns = nil
	r.Values = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		r.Set(key, rawCellToString(raw))
	}
	_, err = dec.Token() // closing brace
	return err
}

func rawCellToString(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(bytes.TrimSpace(raw))
}
