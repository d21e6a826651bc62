package metadata

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"patrimonio/pkg/models"
)

// Service keys group units by the kind of social-service facility.
const (
	ServiceConselho  = "conselho"
	ServiceCras      = "cras"
	ServiceCreas     = "creas"
	ServiceExterna   = "externa"
	ServiceCentroPop = "centro_pop"
	ServiceAbrigo    = "abrigo"
	ServiceSede      = "sede"
	ServiceOutros    = "item"
)

// ServiceKey maps a free-text service name onto its fixed grouping key.
func ServiceKey(serviceName string) string {
	name := strings.TrimSpace(strings.ToLower(serviceName))
	switch {
	case name == "conselho" || name == "ct":
		return ServiceConselho
	case strings.Contains(name, "cras"):
		return ServiceCras
	case strings.Contains(name, "creas"):
		return ServiceCreas
	case strings.Contains(name, "externa"):
		return ServiceExterna
	case strings.Contains(name, "centro pop"):
		return ServiceCentroPop
	case strings.Contains(name, "abrigo"):
		return ServiceAbrigo
	case strings.Contains(name, "sede"):
		return ServiceSede
	default:
		return ServiceOutros
	}
}

// ServiceLabel is the human-facing name of a service key.
func ServiceLabel(key string) string {
	switch key {
	case ServiceConselho:
		return "Conselho Tutelar"
	case ServiceCras:
		return "CRAS"
	case ServiceCreas:
		return "CREAS"
	case ServiceExterna:
		return "Unidade Externa"
	case ServiceCentroPop:
		return "Centro POP"
	case ServiceAbrigo:
		return "Abrigo"
	case ServiceSede:
		return "Sede"
	case "outros":
		return "Outros"
	default:
		return strings.ToUpper(key)
	}
}

// FormatUnitName derives the display label for the unit owning an asset.
// A "CT" type overrides everything else; CRAS/CREAS records gain their
// service prefix unless already present; externally managed, sede,
// centro_pop, abrigo and conselho units pass through unprefixed.
func FormatUnitName(item models.AssetRecord) string {
	unitName := item.UnitName
	if item.Type == "CT" {
		return "CT " + unitName
	}

	switch item.ServiceToken() {
	case ServiceCreas:
		return "CREAS " + unitName
	case ServiceCras:
		if !strings.HasPrefix(strings.ToLower(unitName), "cras ") {
			return "CRAS " + unitName
		}
		return unitName
	case ServiceExterna, ServiceCentroPop, ServiceAbrigo, ServiceSede, ServiceConselho:
		return unitName
	}
	return unitName
}

// Fold lowercases a string and strips combining diacritics, so that
// "Observação" and "observacao" compare equal.
func Fold(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
