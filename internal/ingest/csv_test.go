package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSVDelimiterAutodetection(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "semicolon delimiter",
			text: "Tipo;Descrição;Quantidade\nMobiliário;Cadeira;10\nEquipamento;Notebook;2",
		},
		{
			name: "comma delimiter",
			text: "Tipo,Descrição,Quantidade\nMobiliário,Cadeira,10\nEquipamento,Notebook,2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseCSV(tt.text)
			assert.NoError(t, err)
			assert.Len(t, rows, 2)
			assert.Equal(t, "Cadeira", rows[0].Get("Descrição"))
			assert.Equal(t, "10", rows[0].Get("Quantidade"))
			assert.Equal(t, "Notebook", rows[1].Get("Descrição"))
		})
	}
}

func TestParseCSVRejectsHTML(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"html tag", "<html><body>error</body></html>"},
		{"doctype", "<!DOCTYPE html>\n<html></html>"},
		{"google error page", "Sorry, the file you have requested does not exist.\nmore text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseCSV(tt.text)
			assert.ErrorIs(t, err, ErrHTMLResponse)
			assert.Nil(t, rows)
		})
	}
}

func TestParseCSVRejectsHeaderOnly(t *testing.T) {
	for _, text := range []string{"", "Tipo;Descrição"} {
		rows, err := ParseCSV(text)
		assert.ErrorIs(t, err, ErrTooFewLines)
		assert.Nil(t, rows)
	}
}

func TestParseCSVFieldCleanup(t *testing.T) {
	text := "\"Tipo\"; \"Descrição\" ;Obs\n\" Mobiliário \";\"Cadeira \"\"Gamer\"\"\";  plain  "
	rows, err := ParseCSV(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	// one quote layer stripped, whitespace trimmed; embedded quotes are
	// left as-is (known limitation)
	assert.Equal(t, []string{"Tipo", "Descrição", "Obs"}, rows[0].Columns)
	assert.Equal(t, " Mobiliário ", rows[0].Get("Tipo"))
	assert.Equal(t, `Cadeira ""Gamer""`, rows[0].Get("Descrição"))
	assert.Equal(t, "plain", rows[0].Get("Obs"))
}

func TestParseCSVSkipsBlankLinesAndPadsShortRows(t *testing.T) {
	text := "A;B;C\n1;2;3\n\n   \n4;5"
	rows, err := ParseCSV(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "3", rows[0].Get("C"))
	assert.Equal(t, "4", rows[1].Get("A"))
	assert.Equal(t, "", rows[1].Get("C"))
}

func TestParseCSVHandlesCRLF(t *testing.T) {
	rows, err := ParseCSV("A;B\r\n1;2\r\n3;4")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0].Get("B"))
}

func TestParseCSVIsIdempotent(t *testing.T) {
	text := "Tipo;Descrição;Quantidade\nMobiliário;\"Cadeira\";10\nEquipamento;Notebook;2\n\nOutro;Mesa;1"
	first, err := ParseCSV(text)
	assert.NoError(t, err)
	second, err := ParseCSV(text)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
