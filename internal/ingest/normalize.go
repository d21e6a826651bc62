package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// Keywords in a declared state that mark the item as damaged, matched
// diacritic-insensitively.
var damagedStateKeywords = []string{"defeito", "avaria", "danificado", "nao funciona"}

// Keywords in the observation that demote a declared "Novo" to damaged.
var damagedObsKeywords = []string{"avariado", "defeito", "danificado", "nao funciona"}

// Normalize converts raw sheet rows into canonical asset records, in source
// row order. The sheet headers appear in two conventions depending on which
// mirror served them; each field tries the accented header first, then the
// ASCII alias, then a default.
func Normalize(rows []models.SheetRow) []models.AssetRecord {
	records := make([]models.AssetRecord, 0, len(rows))
	for index, row := range rows {
		records = append(records, normalizeRow(row, index))
	}
	return records
}

func normalizeRow(row models.SheetRow, index int) models.AssetRecord {
	idToken := resolve(row, "Tipo", "tipo", "item")
	declaredState := resolve(row, "Estado", "estado", "Regular")
	observation := resolve(row, "Observação", "observacao", "")

	return models.AssetRecord{
		// Positional identifier: tied to row order, not content.
		ID:             fmt.Sprintf("%s_%d", idToken, index),
		Type:           resolve(row, "Tipo", "tipo", "N/A"),
		Description:    resolve(row, "Descrição", "descricao", "N/A"),
		UnitName:       resolve(row, "Unidade", "unidade", "N/A"),
		Quantity:       parseQuantity(resolve(row, "Quantidade", "quantidade", "1")),
		Location:       resolve(row, "Localização", "localizacao", "N/A"),
		State:          correctState(declaredState, observation),
		DonationSource: resolve(row, "Origem da Doação", "origem_doacao", ""),
		Observation:    observation,
		Supplier:       resolve(row, "Fornecedor", "fornecedor", ""),
	}
}

func resolve(row models.SheetRow, accented, alias, fallback string) string {
	if v := row.Get(accented); v != "" {
		return v
	}
	if v := row.Get(alias); v != "" {
		return v
	}
	return fallback
}

// parseQuantity reads the leading integer of the raw text. Parse failures
// and non-positive results fall back to 1.
func parseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// correctState applies the one-way damage correction: a state already
// naming a defect always becomes "Avariado", and a declared "Novo" is
// demoted when the observation contradicts it. A declared "Avariado" is
// never downgraded.
func correctState(declared, observation string) string {
	stateText := metadata.Fold(declared)
	if containsAny(stateText, damagedStateKeywords) {
		return metadata.StateAvariado.String()
	}
	if declared == metadata.StateNovo.String() &&
		containsAny(metadata.Fold(observation), damagedObsKeywords) {
		return metadata.StateAvariado.String()
	}
	return declared
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
