// Package labels maps dimension names to human-readable labels per locale.
// It backs the adaptive-message seam in internal/tips; anything fancier than
// name -> label (full sentence localization) belongs to the UI layer.
package labels

import "github.com/recenterhq/driftcheck/pkg/models"

const DefaultLocale = "en"

var byLocale = map[string]map[models.Dimension]string{
	"en": {
		models.DimEnergy:         "Energy",
		models.DimSleep:          "Sleep",
		models.DimStructure:      "Daily structure",
		models.DimInitiation:     "Getting started",
		models.DimEngagement:     "Engagement",
		models.DimSustainability: "Sustainable pace",
	},
	"pt": {
		models.DimEnergy:         "Energia",
		models.DimSleep:          "Sono",
		models.DimStructure:      "Estrutura do dia",
		models.DimInitiation:     "Começar tarefas",
		models.DimEngagement:     "Engajamento",
		models.DimSustainability: "Ritmo sustentável",
	},
}

// For returns a label function for the locale, falling back to the default
// locale for unknown locales and to the raw dimension name for gaps.
func For(locale string) func(models.Dimension) string {
	m, ok := byLocale[locale]
	if !ok {
		m = byLocale[DefaultLocale]
	}
	return func(d models.Dimension) string {
		if l, ok := m[d]; ok {
			return l
		}
		return string(d)
	}
}

// Locales lists the supported locale codes.
func Locales() []string {
	out := make([]string, 0, len(byLocale))
	for k := range byLocale {
		out = append(out, k)
	}
	return out
}
