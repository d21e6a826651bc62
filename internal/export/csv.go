// Package export renders the current views into downloadable artifacts:
// CSV tables, the plain-text needs report, an XLSX workbook and the summary
// chart PNG.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"patrimonio/internal/views"
	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// assetHeaders is the fixed column set of the asset table export.
var assetHeaders = []string{
	"Tipo", "Descrição", "Unidade", "Quantidade", "Localização",
	"Estado", "Origem da Doação", "Observação", "Fornecedor",
}

// WriteAssetsCSV writes the (already filtered) asset table as ";"-separated
// CSV, with display-formatted unit names.
func WriteAssetsCSV(w io.Writer, items []models.AssetRecord) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(assetHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Type,
			item.Description,
			metadata.FormatUnitName(item),
			strconv.Itoa(item.Quantity),
			item.Location,
			item.State,
			item.DonationSource,
			item.Observation,
			item.Supplier,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStockCSV writes the stock table with its dynamic columns in source
// order. The first row's columns define the header.
func WriteStockCSV(w io.Writer, items []models.StockRecord) error {
	if len(items) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	headers := items[0].Columns
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		record := make([]string, len(headers))
		for i, header := range headers {
			record[i] = item.Get(header)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteNeedsReport writes the needs analysis as plain text, one block per
// unit.
func WriteNeedsReport(w io.Writer, results []views.UnitNeeds) error {
	for i, unit := range results {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:", unit.UnitName); err != nil {
			return err
		}
		for _, need := range unit.Missing {
			if _, err := fmt.Fprintf(w, "\n- Falta: %s (Sugestão: %s)", need.Item, need.Location); err != nil {
				return err
			}
		}
	}
	return nil
}
