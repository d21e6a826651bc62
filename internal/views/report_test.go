package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"patrimonio/pkg/models"
)

func TestBuildUnitReportEmpty(t *testing.T) {
	assert.Nil(t, BuildUnitReport(nil))
}

func TestBuildUnitReport(t *testing.T) {
	items := []models.AssetRecord{
		{ID: "cras_0", Type: "cras", Description: "Mesa de Escritório", UnitName: "Centro", Quantity: 2, Location: "Recepção", State: "Novo"},
		{ID: "cras_1", Type: "cras", Description: "Cadeira Giratória", UnitName: "Centro", Quantity: 6, Location: "Sala de Atendimento", State: "Bom"},
		{ID: "cras_2", Type: "cras", Description: "Impressora Laser", UnitName: "Centro", Quantity: 1, Location: "TI", State: "Avariado"},
		{ID: "cras_3", Type: "cras", Description: "Ventilador de Teto", UnitName: "Centro", Quantity: 3, Location: "N/A", State: "Regular"},
		{ID: "cras_4", Type: "cras", Description: "Armário de Aço", UnitName: "Centro", Quantity: 1, Location: "Recepção", State: "Regular", Observation: "porta com defeito"},
	}

	report := BuildUnitReport(items)

	assert.NotNil(t, report)
	assert.Equal(t, "CRAS Centro", report.UnitName)
	assert.Equal(t, 13, report.TotalItems)
	assert.Equal(t, 5, report.TotalTypes)

	assert.Len(t, report.StateStats, 4)
	assert.Equal(t, "Novo", report.StateStats[0].State)
	assert.Equal(t, 2, report.StateStats[0].Quantity)
	assert.Equal(t, "Regular", report.StateStats[3].State)
	assert.Equal(t, 4, report.StateStats[3].Quantity)

	assert.Len(t, report.Attention, 3)
	assert.Equal(t, "cras_2", report.Attention[0].Item.ID)
	assert.Equal(t, "Item avariado", report.Attention[0].Reason)
	assert.Equal(t, "cras_3", report.Attention[1].Item.ID)
	assert.Equal(t, "Localização não definida", report.Attention[1].Reason)
	assert.Equal(t, "cras_4", report.Attention[2].Item.ID)
	assert.Equal(t, "Observação indica problema", report.Attention[2].Reason)

	assert.Len(t, report.NewItems, 1)
	assert.Len(t, report.GoodItems, 1)

	assert.Equal(t, []string{"Recepção", "Sala de Atendimento", "TI"}, report.Locations)

	assert.Len(t, report.TypeStats, 1)
	assert.Equal(t, 5, report.TypeStats[0].Count)
	assert.Equal(t, 13, report.TypeStats[0].Quantity)
}

func TestAttentionIgnoresHealthyStates(t *testing.T) {
	// a good item with a bad observation is not flagged
	item := models.AssetRecord{ID: "cras_0", State: "Bom", Observation: "tela quebrada"}
	report := BuildUnitReport([]models.AssetRecord{item})
	assert.Empty(t, report.Attention)
}
