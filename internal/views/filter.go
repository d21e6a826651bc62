package views

import (
	"strings"

	"patrimonio/pkg/models"
)

// Donation filter values.
const (
	DonationAll = "all"
	DonationYes = "sim"
	DonationNo  = "nao"
)

// Filter is the conjunction of independent table predicates. Zero values
// (and "all") match everything.
type Filter struct {
	// Service matches the id prefix, i.e. the raw type token.
	Service string
	// Unit is an exact match against the raw unit name.
	Unit string
	// State is an exact match against the corrected state.
	State string
	// Search is a case-insensitive substring match on description or type.
	Search string
	// Donation is "sim", "nao" or ""/"all".
	Donation string
}

// Apply filters items, preserving order. The result is always a subset of
// the input and equals it when every predicate is at its default.
func Apply(items []models.AssetRecord, f Filter) []models.AssetRecord {
	service := normalizeAll(f.Service)
	state := normalizeAll(f.State)
	donation := normalizeAll(f.Donation)
	search := strings.ToLower(f.Search)

	out := make([]models.AssetRecord, 0, len(items))
	for _, item := range items {
		if service != "" && !strings.HasPrefix(item.ID, service+"_") {
			continue
		}
		if f.Unit != "" && item.UnitName != f.Unit {
			continue
		}
		if state != "" && item.State != state {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Description), search) &&
			!strings.Contains(strings.ToLower(item.Type), search) {
			continue
		}
		switch donation {
		case DonationYes:
			if !item.IsDonation() {
				continue
			}
		case DonationNo:
			if item.IsDonation() {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func normalizeAll(v string) string {
	if v == DonationAll {
		return ""
	}
	return v
}
