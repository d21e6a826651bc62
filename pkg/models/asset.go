package models

import "strings"

// AssetRecord is one normalized patrimônio line. Instances are rebuilt from
// scratch on every load; nothing mutates them after normalization.
type AssetRecord struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	UnitName       string `json:"unit_name"`
	Quantity       int    `json:"quantity"`
	Location       string `json:"location"`
	State          string `json:"state"`
	DonationSource string `json:"donation_source"`
	Observation    string `json:"observation"`
	Supplier       string `json:"supplier"`
}

// ServiceToken returns the substring of the positional id before the first
// underscore. The id is assigned as "<type>_<rowIndex>".
func (a AssetRecord) ServiceToken() string {
	token, _, found := strings.Cut(a.ID, "_")
	if !found {
		return a.ID
	}
	return token
}

// IsDonation reports whether the record came in as a donation. Empty origin
// and "proprio"/"proprios" count as organically owned.
func (a AssetRecord) IsDonation() bool {
	origin := strings.ToLower(a.DonationSource)
	if origin == "" || origin == "proprio" || origin == "proprios" {
		return false
	}
	return true
}
