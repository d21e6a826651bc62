package views

import (
	"strings"

	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// LocationCount is one "unit - location" bucket inside a description group.
type LocationCount struct {
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// DescriptionGroup accumulates every line sharing one description.
type DescriptionGroup struct {
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Total       int             `json:"total"`
	Locations   []LocationCount `json:"locations"`
}

// GroupFilter narrows the grouped view. Unit compares against the formatted
// display name, unlike the table filter which uses the raw unit name.
type GroupFilter struct {
	Category string
	Search   string
	Unit     string
	State    string
}

// GroupByDescription groups assets by description, skipping the "N/A"
// sentinel, accumulating total quantity and a per-"unit - location"
// breakdown. Groups and locations keep first-seen order.
func GroupByDescription(items []models.AssetRecord, f GroupFilter) []DescriptionGroup {
	category := normalizeAll(f.Category)
	state := normalizeAll(f.State)
	unit := normalizeAll(f.Unit)
	search := strings.ToLower(f.Search)

	var order []string
	groups := make(map[string]*DescriptionGroup)
	locationIdx := make(map[string]map[string]int)

	for _, item := range items {
		if category != "" && item.Type != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		if unit != "" && metadata.FormatUnitName(item) != unit {
			continue
		}
		if state != "" && item.State != state {
			continue
		}

		desc := item.Description
		if desc == "" || desc == "N/A" {
			continue
		}

		group, ok := groups[desc]
		if !ok {
			group = &DescriptionGroup{Description: desc, Type: item.Type}
			groups[desc] = group
			locationIdx[desc] = make(map[string]int)
			order = append(order, desc)
		}
		group.Total += item.Quantity

		location := item.Location
		if location == "" {
			location = "N/D"
		}
		key := metadata.FormatUnitName(item) + " - " + location
		if idx, seen := locationIdx[desc][key]; seen {
			group.Locations[idx].Quantity += item.Quantity
		} else {
			locationIdx[desc][key] = len(group.Locations)
			group.Locations = append(group.Locations, LocationCount{Location: key, Quantity: item.Quantity})
		}
	}

	out := make([]DescriptionGroup, 0, len(order))
	for _, desc := range order {
		out = append(out, *groups[desc])
	}
	return out
}
