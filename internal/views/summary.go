// Package views computes the derived projections consumed by the dashboard.
// Every function is pure and order-preserving over the canonical asset
// list; nothing here holds state, so projections are safe to recompute on
// every request.
package views

import (
	"patrimonio/pkg/metadata"
	"patrimonio/pkg/models"
)

// Summary aggregates quantities by conservation state plus the donation
// bucket.
type Summary struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Good      int `json:"good"`
	Regular   int `json:"regular"`
	Damaged   int `json:"damaged"`
	Donations int `json:"donations"`
}

// Summarize computes the running quantity totals for the dashboard header
// and the state-distribution chart.
func Summarize(items []models.AssetRecord) Summary {
	var s Summary
	for _, item := range items {
		s.Total += item.Quantity
		switch item.State {
		case metadata.StateNovo.String():
			s.New += item.Quantity
		case metadata.StateBom.String():
			s.Good += item.Quantity
		case metadata.StateRegular.String():
			s.Regular += item.Quantity
		case metadata.StateAvariado.String():
			s.Damaged += item.Quantity
		}
		if item.IsDonation() {
			s.Donations += item.Quantity
		}
	}
	return s
}
