package views

import (
	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// ServiceGroup lists the distinct units of one service type.
type ServiceGroup struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	UnitCount int      `json:"unit_count"`
	Units     []string `json:"units"`
}

// UnitSummary aggregates one unit across its assets.
type UnitSummary struct {
	Name          string   `json:"name"`
	ServiceKey    string   `json:"service_key"`
	TotalQuantity int      `json:"total_quantity"`
	ItemTypes     []string `json:"item_types"`
}

// UnitsOverview groups units by their id-derived service token and
// aggregates per-unit totals plus the set of distinct item types. Both
// groupings keep first-seen order.
func UnitsOverview(items []models.AssetRecord) ([]ServiceGroup, []UnitSummary) {
	var serviceOrder []string
	services := make(map[string]*ServiceGroup)
	serviceUnits := make(map[string]map[string]bool)

	var unitOrder []string
	units := make(map[string]*UnitSummary)
	unitTypes := make(map[string]map[string]bool)

	for _, item := range items {
		unitName := metadata.FormatUnitName(item)
		serviceKey := item.ServiceToken()
		if serviceKey == "" {
			serviceKey = "outros"
		}

		group, ok := services[serviceKey]
		if !ok {
			group = &ServiceGroup{Key: serviceKey, Label: metadata.ServiceLabel(serviceKey)}
			services[serviceKey] = group
			serviceUnits[serviceKey] = make(map[string]bool)
			serviceOrder = append(serviceOrder, serviceKey)
		}
		if !serviceUnits[serviceKey][unitName] {
			serviceUnits[serviceKey][unitName] = true
			group.Units = append(group.Units, unitName)
			group.UnitCount = len(group.Units)
		}

		summary, ok := units[unitName]
		if !ok {
			summary = &UnitSummary{Name: unitName, ServiceKey: serviceKey}
			units[unitName] = summary
			unitTypes[unitName] = make(map[string]bool)
			unitOrder = append(unitOrder, unitName)
		}
		summary.TotalQuantity += item.Quantity
		if !unitTypes[unitName][item.Type] {
			unitTypes[unitName][item.Type] = true
			summary.ItemTypes = append(summary.ItemTypes, item.Type)
		}
	}

	groups := make([]ServiceGroup, 0, len(serviceOrder))
	for _, key := range serviceOrder {
		groups = append(groups, *services[key])
	}
	summaries := make([]UnitSummary, 0, len(unitOrder))
	for _, name := range unitOrder {
		summaries = append(summaries, *units[name])
	}
	return groups, summaries
}

// UnitNames returns the distinct formatted unit names in first-seen order.
func UnitNames(items []models.AssetRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range items {
		name := metadata.FormatUnitName(item)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
