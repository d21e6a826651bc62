package views

import (
	"strings"

	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// Observation keywords that mark a Regular item as needing attention.
var problemKeywords = []string{
	"defeito", "avaria", "danificado", "não funciona", "nao funciona", "quebrado", "problema",
}

// StateStat counts one conservation state within a unit.
type StateStat struct {
	State    string               `json:"state"`
	Quantity int                  `json:"quantity"`
	Items    []models.AssetRecord `json:"items"`
}

// TypeStat counts one item type within a unit.
type TypeStat struct {
	Type     string `json:"type"`
	Count    int    `json:"count"`
	Quantity int    `json:"quantity"`
}

// AttentionItem is an asset flagged by the report with the reason why.
type AttentionItem struct {
	Item   models.AssetRecord `json:"item"`
	Reason string             `json:"reason"`
}

// UnitReport is the descriptive summary of a single unit's assets.
type UnitReport struct {
	UnitName   string               `json:"unit_name"`
	TotalItems int                  `json:"total_items"`
	TotalTypes int                  `json:"total_types"`
	StateStats []StateStat          `json:"state_stats"`
	Attention  []AttentionItem      `json:"attention"`
	NewItems   []models.AssetRecord `json:"new_items"`
	GoodItems  []models.AssetRecord `json:"good_items"`
	Locations  []string             `json:"locations"`
	TypeStats  []TypeStat           `json:"type_stats"`
}

// BuildUnitReport summarizes the given items, which must already be
// filtered down to a single unit. Returns nil when there is nothing to
// report.
func BuildUnitReport(items []models.AssetRecord) *UnitReport {
	if len(items) == 0 {
		return nil
	}

	report := &UnitReport{
		UnitName:   metadata.FormatUnitName(items[0]),
		TotalTypes: len(items),
	}

	var stateOrder []string
	states := make(map[string]*StateStat)
	var typeOrder []string
	types := make(map[string]*TypeStat)
	seenLocations := make(map[string]bool)

	for _, item := range items {
		report.TotalItems += item.Quantity

		stat, ok := states[item.State]
		if !ok {
			stat = &StateStat{State: item.State}
			states[item.State] = stat
			stateOrder = append(stateOrder, item.State)
		}
		stat.Quantity += item.Quantity
		stat.Items = append(stat.Items, item)

		if reason, flagged := attentionReason(item); flagged {
			report.Attention = append(report.Attention, AttentionItem{Item: item, Reason: reason})
		}

		switch item.State {
		case metadata.StateNovo.String():
			report.NewItems = append(report.NewItems, item)
		case metadata.StateBom.String():
			report.GoodItems = append(report.GoodItems, item)
		}

		if loc := item.Location; loc != "" && loc != "N/A" && loc != "-" && !seenLocations[loc] {
			seenLocations[loc] = true
			report.Locations = append(report.Locations, loc)
		}

		tstat, ok := types[item.Type]
		if !ok {
			tstat = &TypeStat{Type: item.Type}
			types[item.Type] = tstat
			typeOrder = append(typeOrder, item.Type)
		}
		tstat.Count++
		tstat.Quantity += item.Quantity
	}

	for _, state := range stateOrder {
		report.StateStats = append(report.StateStats, *states[state])
	}
	for _, t := range typeOrder {
		report.TypeStats = append(report.TypeStats, *types[t])
	}
	return report
}

// attentionReason flags damaged items, and Regular items with either no
// defined location or an observation hinting at a problem.
func attentionReason(item models.AssetRecord) (string, bool) {
	if item.State == metadata.StateAvariado.String() {
		return "Item avariado", true
	}
	if item.State != metadata.StateRegular.String() {
		return "", false
	}
	if item.Location == "" || item.Location == "N/A" || item.Location == "-" {
		return "Localização não definida", true
	}
	obs := strings.ToLower(item.Observation)
	for _, keyword := range problemKeywords {
		if strings.Contains(obs, keyword) {
			return "Observação indica problema", true
		}
	}
	return "", false
}
