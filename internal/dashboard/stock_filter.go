package dashboard

import (
	"strings"

	"patrimonio/pkg/models"
)

// filterStock narrows the schema-free stock list: case-insensitive
// substring on the Item/Fornecedor columns plus an exact Unidade match.
// Empty or "all" values match everything.
func filterStock(items []models.StockRecord, search, unit string) []models.StockRecord {
	search = strings.ToLower(search)
	if unit == "all" {
		unit = ""
	}

	out := make([]models.StockRecord, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Get("Item")), search) &&
			!strings.Contains(strings.ToLower(item.Get("Fornecedor")), search) {
			continue
		}
		if unit != "" && item.Get("Unidade") != unit {
			continue
		}
		out = append(out, item)
	}
	return out
}
