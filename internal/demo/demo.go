// Package demo bundles the fixed fallback datasets used whenever neither
// cache nor network can provide data. The values cover every unit category
// and every derived view, so the dashboard stays fully usable offline.
package demo

import "patrimonio/pkg/models"

var patrimonioColumns = []string{
	"Tipo", "Descrição", "Unidade", "Quantidade", "Localização",
	"Estado", "Origem da Doação", "Observação", "Fornecedor",
}

var estoqueColumns = []string{
	"Item", "Quantidade", "Unidade", "Fornecedor", "Data de Entrada", "Observação",
}

const demoNote = "Sistema em modo demonstração - dados de exemplo"

func assetRow(values ...string) models.SheetRow {
	row := models.NewSheetRow(nil)
	for i, col := range patrimonioColumns {
		row.Set(col, values[i])
	}
	return row
}

func stockRow(values ...string) models.StockRecord {
	row := models.NewSheetRow(nil)
	for i, col := range estoqueColumns {
		row.Set(col, values[i])
	}
	return row
}

// PatrimonioRows returns the demo asset sheet in raw row form; callers run
// it through the normalizer exactly like network data.
func PatrimonioRows() []models.SheetRow {
	return []models.SheetRow{
		// CRAS Centro
		assetRow("Mobiliário", "Cadeira de Escritório Giratória", "CRAS Centro", "12", "Sala de Atendimento", "Bom", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Equipamento", "Computador Desktop Dell", "CRAS Centro", "4", "Recepção", "Novo", "", demoNote, "TechSul Informática"),
		assetRow("Eletrodoméstico", "Bebedouro Industrial", "CRAS Centro", "1", "Copa", "Bom", "Doação Municipal", demoNote, ""),
		assetRow("Mobiliário", "Mesa de Reunião Oval", "CRAS Centro", "2", "Sala de Reuniões", "Regular", "", "Sistema em modo demonstração - pequenos riscos", "Móveis São Luís Ltda"),
		assetRow("Equipamento", "Impressora Multifuncional HP", "CRAS Centro", "1", "Administração", "Avariado", "", "Sistema em modo demonstração - precisa de manutenção", "TechSul Informática"),
		assetRow("Eletrodoméstico", "Ar Condicionado Split 12000 BTUs", "CRAS Centro", "2", "Atendimento", "Novo", "", demoNote, "Clima São Luís"),

		// CREAS Norte
		assetRow("Mobiliário", "Cadeira Plástica Empilhável", "CREAS Norte", "20", "Sala de Espera", "Bom", "", demoNote, "Plásticos Nordeste"),
		assetRow("Eletrodoméstico", "Ar Condicionado Split 18000 BTUs", "CREAS Norte", "3", "Atendimento", "Novo", "Doação Estadual", demoNote, ""),
		assetRow("Equipamento", "Notebook Lenovo", "CREAS Norte", "5", "Coordenação", "Bom", "", demoNote, "TechSul Informática"),
		assetRow("Eletrodoméstico", "Ventilador de Teto", "CREAS Norte", "6", "Sala de Atendimento", "Regular", "", demoNote, "Elétrica Central"),
		assetRow("Eletrodoméstico", "Bebedouro Gelágua", "CREAS Norte", "1", "Recepção", "Bom", "Doação Municipal", demoNote, ""),

		// CT São Luís
		assetRow("Mobiliário", "Mesa de Escritório L", "São Luís", "8", "Gabinete", "Bom", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Equipamento", "Telefone Fixo Digital", "São Luís", "10", "Atendimento", "Bom", "", demoNote, "Telecom MA"),
		assetRow("Mobiliário", "Arquivo de Aço 4 Gavetas", "São Luís", "6", "Arquivo", "Novo", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Eletrodoméstico", "Ventilador de Coluna", "São Luís", "4", "Sala de Atendimento", "Regular", "", demoNote, "Elétrica Central"),

		// CRAS Cohama
		assetRow("Equipamento", "Projetor Multimídia", "CRAS Cohama", "1", "Auditório", "Bom", "Doação Federal", demoNote, ""),
		assetRow("Eletrodoméstico", "Micro-ondas 30L", "CRAS Cohama", "1", "Copa", "Novo", "", demoNote, "Eletro São Luís"),
		assetRow("Mobiliário", "Sofá 3 Lugares", "CRAS Cohama", "2", "Sala de Espera", "Bom", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Eletrodoméstico", "Ar Condicionado Split 9000 BTUs", "CRAS Cohama", "3", "Atendimento", "Novo", "", demoNote, "Clima São Luís"),

		// CRAS Turu
		assetRow("Mobiliário", "Mesa Redonda", "CRAS Turu", "4", "Sala de Atividades", "Bom", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Equipamento", "TV LED 42 polegadas", "CRAS Turu", "1", "Sala de Espera", "Novo", "Doação Municipal", demoNote, ""),
		assetRow("Eletrodoméstico", "Bebedouro Coluna", "CRAS Turu", "1", "Corredor", "Bom", "", demoNote, "Eletro São Luís"),

		// Centro POP
		assetRow("Eletrodoméstico", "Geladeira Duplex 400L", "Centro POP", "2", "Cozinha", "Bom", "Doação Municipal", demoNote, ""),
		assetRow("Mobiliário", "Beliche de Ferro", "Centro POP", "15", "Dormitório", "Regular", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Eletrodoméstico", "Fogão Industrial 6 Bocas", "Centro POP", "1", "Cozinha", "Bom", "Doação Municipal", demoNote, ""),
		assetRow("Eletrodoméstico", "Máquina de Lavar 12kg", "Centro POP", "2", "Lavanderia", "Novo", "Doação Estadual", demoNote, ""),

		// Sede
		assetRow("Equipamento", "Servidor Dell PowerEdge", "Sede", "1", "TI", "Novo", "", demoNote, "TechSul Informática"),
		assetRow("Mobiliário", "Estante de Aço 5 Prateleiras", "Sede", "12", "Almoxarifado", "Bom", "", demoNote, "Móveis São Luís Ltda"),
		assetRow("Equipamento", "Roteador Wi-Fi Empresarial", "Sede", "3", "TI", "Novo", "", demoNote, "TechSul Informática"),
		assetRow("Mobiliário", "Mesa de Diretoria", "Sede", "1", "Diretoria", "Novo", "", demoNote, "Móveis São Luís Ltda"),

		// Unidade Externa Itaqui-Bacanga
		assetRow("Mobiliário", "Cadeira Plástica", "Unidade Externa Itaqui-Bacanga", "25", "Sala Multiuso", "Regular", "", demoNote, "Plásticos Nordeste"),
		assetRow("Equipamento", "Caixa de Som Amplificada", "Unidade Externa Itaqui-Bacanga", "2", "Sala Multiuso", "Bom", "Doação Municipal", demoNote, ""),

		// Abrigo Institucional
		assetRow("Mobiliário", "Cama Solteiro", "Abrigo Institucional", "20", "Dormitório Infantil", "Bom", "Doação Federal", demoNote, ""),
		assetRow("Eletrodoméstico", "Geladeira 300L", "Abrigo Institucional", "1", "Cozinha", "Novo", "Doação Municipal", demoNote, ""),
		assetRow("Equipamento", "Tablet Educativo", "Abrigo Institucional", "8", "Sala de Estudos", "Novo", "Doação Federal", demoNote, ""),
	}
}

// EstoqueRows returns the demo consumable-stock dataset.
func EstoqueRows() []models.StockRecord {
	return []models.StockRecord{
		stockRow("Papel A4 75g", "500", "Resma", "Papelaria Central MA", "15/01/2025", demoNote),
		stockRow("Caneta Esferográfica Azul", "200", "Unidade", "Material Escolar MA", "10/01/2025", demoNote),
		stockRow("Café em Pó Tradicional", "50", "Pacote 500g", "Distribuidora Nordeste", "20/01/2025", demoNote),
		stockRow("Água Mineral", "100", "Galão 20L", "Água Pura MA", "18/01/2025", demoNote),
		stockRow("Açúcar Cristal", "30", "Pacote 1kg", "Distribuidora Nordeste", "22/01/2025", demoNote),
		stockRow("Detergente Neutro", "24", "Frasco 500ml", "Limpeza Total MA", "12/01/2025", demoNote),
		stockRow("Papel Higiênico", "100", "Rolo", "Higiene São Luís", "08/01/2025", demoNote),
		stockRow("Álcool em Gel 70%", "50", "Frasco 500ml", "Farmácia Central", "25/01/2025", demoNote),
	}
}
