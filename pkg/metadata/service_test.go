package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"patrimonio/pkg/models"
)

func TestFormatUnitName(t *testing.T) {
	cases := []struct {
		name     string
		item     models.AssetRecord
		expected string
	}{
		{
			name:     "CT type overrides the id prefix",
			item:     models.AssetRecord{ID: "creas_3", Type: "CT", UnitName: "São Luís"},
			expected: "CT São Luís",
		},
		{
			name:     "creas always gains its prefix",
			item:     models.AssetRecord{ID: "creas_1", Type: "Cadeira", UnitName: "Norte"},
			expected: "CREAS Norte",
		},
		{
			name:     "creas prefix is applied even when already present",
			item:     models.AssetRecord{ID: "creas_1", Type: "Cadeira", UnitName: "CREAS Norte"},
			expected: "CREAS CREAS Norte",
		},
		{
			name:     "cras gains its prefix",
			item:     models.AssetRecord{ID: "cras_0", Type: "Mesa", UnitName: "Centro"},
			expected: "CRAS Centro",
		},
		{
			name:     "cras prefix not duplicated",
			item:     models.AssetRecord{ID: "cras_0", Type: "Mesa", UnitName: "CRAS Centro"},
			expected: "CRAS Centro",
		},
		{
			name:     "cras prefix check is case-insensitive",
			item:     models.AssetRecord{ID: "cras_0", Type: "Mesa", UnitName: "cras Centro"},
			expected: "cras Centro",
		},
		{
			name:     "externa passes through",
			item:     models.AssetRecord{ID: "externa_5", Type: "Mesa", UnitName: "Unidade Externa Itaqui-Bacanga"},
			expected: "Unidade Externa Itaqui-Bacanga",
		},
		{
			name:     "centro_pop passes through",
			item:     models.AssetRecord{ID: "centro_pop_2", Type: "Mesa", UnitName: "Centro POP"},
			expected: "Centro POP",
		},
		{
			name:     "sede passes through",
			item:     models.AssetRecord{ID: "sede_9", Type: "Mesa", UnitName: "Sede SEMCAS"},
			expected: "Sede SEMCAS",
		},
		{
			name:     "unknown prefix passes through",
			item:     models.AssetRecord{ID: "item_4", Type: "Mesa", UnitName: "Almoxarifado"},
			expected: "Almoxarifado",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatUnitName(tc.item))
		})
	}
}

func TestServiceKey(t *testing.T) {
	assert.Equal(t, ServiceConselho, ServiceKey("CT"))
	assert.Equal(t, ServiceConselho, ServiceKey("conselho"))
	assert.Equal(t, ServiceCras, ServiceKey("CRAS Centro"))
	assert.Equal(t, ServiceCreas, ServiceKey("Creas Norte"))
	assert.Equal(t, ServiceExterna, ServiceKey("Unidade Externa"))
	assert.Equal(t, ServiceCentroPop, ServiceKey("Centro POP"))
	assert.Equal(t, ServiceAbrigo, ServiceKey("Abrigo Institucional"))
	assert.Equal(t, ServiceSede, ServiceKey("Sede"))
	assert.Equal(t, ServiceOutros, ServiceKey("qualquer coisa"))
	assert.Equal(t, ServiceOutros, ServiceKey(""))
}

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "Conselho Tutelar", ServiceLabel(ServiceConselho))
	assert.Equal(t, "CRAS", ServiceLabel(ServiceCras))
	assert.Equal(t, "Centro POP", ServiceLabel(ServiceCentroPop))
	assert.Equal(t, "Outros", ServiceLabel("outros"))
	assert.Equal(t, "ITEM", ServiceLabel("item"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "observacao", Fold("Observação"))
	assert.Equal(t, "nao funciona", Fold("NÃO FUNCIONA"))
	assert.Equal(t, "avaria", Fold("avaria"))
	assert.Equal(t, "", Fold(""))
}

func TestStates(t *testing.T) {
	assert.Equal(t, []State{StateNovo, StateBom, StateRegular, StateAvariado}, States())

	_, err := NewState("Quebrado")
	assert.Error(t, err)

	state, err := NewState("Avariado")
	assert.NoError(t, err)
	assert.Equal(t, "Avariado", state.String())
}
