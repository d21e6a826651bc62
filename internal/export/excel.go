package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// WriteAssetsXLSX writes the (already filtered) asset table as an XLSX
// workbook with a single "Inventário" sheet.
func WriteAssetsXLSX(w io.Writer, items []models.AssetRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventário"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range assetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
	}

	for rowIdx, item := range items {
		values := []any{
			item.Type,
			item.Description,
			metadata.FormatUnitName(item),
			item.Quantity,
			item.Location,
			item.State,
			item.DonationSource,
			item.Observation,
			item.Supplier,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
