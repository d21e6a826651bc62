package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"patrimonio/internal/ingest"
	"patrimonio/internal/views"
	"patrimonio/pkg/models"
)

func exportItems() []models.AssetRecord {
	return []models.AssetRecord{
		{ID: "cras_0", Type: "cras", Description: "Mesa de Escritório", UnitName: "Centro", Quantity: 4, Location: "Recepção", State: "Bom", Supplier: "Móveis São Luís Ltda"},
		{ID: "creas_1", Type: "creas", Description: "Impressora Laser", UnitName: "Norte", Quantity: 1, Location: "TI", State: "Avariado", Observation: "não liga"},
	}
}

func TestWriteAssetsCSV(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteAssetsCSV(&buf, exportItems()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Join(assetHeaders, ";"), lines[0])
	assert.Contains(t, lines[1], "CRAS Centro")
	assert.Contains(t, lines[2], "CREAS Norte")
}

func TestExportedCSVParsesBack(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteAssetsCSV(&buf, exportItems()))

	rows, err := ingest.ParseCSV(buf.String())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Mesa de Escritório", rows[0].Get("Descrição"))
	assert.Equal(t, "CRAS Centro", rows[0].Get("Unidade"))

	records := ingest.Normalize(rows)
	assert.Equal(t, 4, records[0].Quantity)
	assert.Equal(t, "Avariado", records[1].State)
}

func TestWriteStockCSV(t *testing.T) {
	row := models.NewSheetRow(nil)
	row.Set("Item", "Papel A4")
	row.Set("Quantidade", "50")
	row.Set("Unidade", "Almoxarifado Central")

	var buf bytes.Buffer
	assert.NoError(t, WriteStockCSV(&buf, []models.StockRecord{row}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Item;Quantidade;Unidade", lines[0])
	assert.Equal(t, "Papel A4;50;Almoxarifado Central", lines[1])
}

func TestWriteStockCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteStockCSV(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteNeedsReport(t *testing.T) {
	results := []views.UnitNeeds{
		{UnitName: "CRAS Centro", Missing: []views.Need{
			{Item: views.NeedBebedouro, Location: "Área Comum (Ex: Recepção ou Copa)"},
			{Item: views.NeedClimatizacao, Location: "Recepção"},
		}},
		{UnitName: "CREAS Norte", Missing: []views.Need{
			{Item: views.NeedClimatizacao, Location: "Sala de Atendimento"},
		}},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteNeedsReport(&buf, results))

	expected := "CRAS Centro:\n" +
		"- Falta: Bebedouro (Sugestão: Área Comum (Ex: Recepção ou Copa))\n" +
		"- Falta: Ar Condicionado ou Ventilador (Sugestão: Recepção)\n" +
		"\n" +
		"CREAS Norte:\n" +
		"- Falta: Ar Condicionado ou Ventilador (Sugestão: Sala de Atendimento)"
	assert.Equal(t, expected, buf.String())
}

func TestWriteAssetsXLSX(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteAssetsXLSX(&buf, exportItems()))
	// XLSX files are zip archives
	assert.Equal(t, "PK", buf.String()[:2])
}

func TestWriteSummaryChartPNG(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteSummaryChartPNG(&buf, views.Summary{New: 2, Good: 5, Regular: 3, Damaged: 1}))
	assert.Equal(t, "\x89PNG", buf.String()[:4])
}

func TestWriteSummaryChartPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteSummaryChartPNG(&buf, views.Summary{}), ErrNoChartData)
}
