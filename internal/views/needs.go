package views

import (
	"strings"

	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// Need item labels.
const (
	NeedBebedouro    = "Bebedouro"
	NeedClimatizacao = "Ar Condicionado ou Ventilador"
)

// Needs filter values.
const (
	NeedsFilterTodos        = "todos"
	NeedsFilterBebedouro    = "bebedouro"
	NeedsFilterClimatizacao = "climatizacao"
)

// Locations where people stay long enough to need climate control. This is
// a substring heuristic over free text, sensitive to how units fill in the
// location column.
var suitableLocations = []string{
	"recepção", "sala", "atendimento", "cozinha",
	"refeitório", "copa", "auditório", "gabinete",
}

// Need is one missing essential amenity with a suggested placement.
type Need struct {
	Item     string `json:"item"`
	Location string `json:"location"`
}

// UnitNeeds lists the missing amenities of one unit.
type UnitNeeds struct {
	UnitName string `json:"unit_name"`
	Missing  []Need `json:"missing"`
}

// AnalyzeNeeds flags units lacking a water fountain anywhere, and
// people-occupied locations lacking both an air conditioner and a fan.
// Records whose type is "sede" are excluded from the analysis.
func AnalyzeNeeds(items []models.AssetRecord) []UnitNeeds {
	eligible := make([]models.AssetRecord, 0, len(items))
	for _, item := range items {
		if strings.ToLower(item.Type) == "sede" {
			continue
		}
		eligible = append(eligible, item)
	}

	var results []UnitNeeds
	for _, unitName := range UnitNames(eligible) {
		var unitItems []models.AssetRecord
		for _, item := range eligible {
			if metadata.FormatUnitName(item) == unitName {
				unitItems = append(unitItems, item)
			}
		}

		needs := UnitNeeds{UnitName: unitName}

		hasBebedouro := false
		for _, item := range unitItems {
			if strings.Contains(strings.ToLower(item.Description), "bebedouro") {
				hasBebedouro = true
				break
			}
		}
		if !hasBebedouro {
			needs.Missing = append(needs.Missing, Need{
				Item:     NeedBebedouro,
				Location: "Área Comum (Ex: Recepção ou Copa)",
			})
		}

		for _, location := range distinctLocations(unitItems) {
			if !isPeopleOccupied(location) {
				continue
			}
			hasAC, hasFan := false, false
			for _, item := range unitItems {
				if item.Location != location {
					continue
				}
				desc := strings.ToLower(item.Description)
				if strings.Contains(desc, "ar condicionado") {
					hasAC = true
				}
				if strings.Contains(desc, "ventilador") {
					hasFan = true
				}
			}
			if !hasAC && !hasFan {
				needs.Missing = append(needs.Missing, Need{
					Item:     NeedClimatizacao,
					Location: location,
				})
			}
		}

		if len(needs.Missing) > 0 {
			results = append(results, needs)
		}
	}
	return results
}

// FilterNeeds narrows results to one need category; "todos" passes all.
func FilterNeeds(results []UnitNeeds, filter string) []UnitNeeds {
	var want string
	switch filter {
	case NeedsFilterTodos, "":
		return results
	case NeedsFilterBebedouro:
		want = NeedBebedouro
	case NeedsFilterClimatizacao:
		want = NeedClimatizacao
	default:
		return nil
	}

	var out []UnitNeeds
	for _, unit := range results {
		var missing []Need
		for _, need := range unit.Missing {
			if need.Item == want {
				missing = append(missing, need)
			}
		}
		if len(missing) > 0 {
			out = append(out, UnitNeeds{UnitName: unit.UnitName, Missing: missing})
		}
	}
	return out
}

func distinctLocations(items []models.AssetRecord) []string {
	seen := make(map[string]bool)
	var locations []string
	for _, item := range items {
		if !seen[item.Location] {
			seen[item.Location] = true
			locations = append(locations, item.Location)
		}
	}
	return locations
}

func isPeopleOccupied(location string) bool {
	lower := strings.ToLower(location)
	for _, keyword := range suitableLocations {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
