package chatbot

import (
	"strings"

	"reservas/models"
)

// intentRule pairs a keyword set with the intent it signals.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

// intentRules is evaluated top to bottom; the first rule with a matching
// keyword wins. Keywords are compared accent-folded, so "ocupación" and
// "ocupacion" both hit. Order matters: help phrasing often mentions other
// topics, and occupancy wording ("disponibilidad") overlaps with the
// free-space wording, so the more specific sets come first.
var intentRules = []intentRule{
	{models.IntentAyuda, []string{"ayuda", "ayudar", "que haces", "ayudame"}},
	{models.IntentCapacidad, []string{"capacidad", "cuantas personas", "cuantos caben", "cuantas caben"}},
	{models.IntentOcupacion, []string{"ocupado", "ocupacion", "reservas", "reservado", "bloques", "horario", "disponibilidad"}},
	{models.IntentLibres, []string{"libre", "libres", "disponible", "disponibles"}},
}

// ClassifyIntent runs the ordered keyword table over a query. Returns
// IntentNone when nothing matches.
func ClassifyIntent(text string) models.Intent {
	folded := foldAccents(strings.ToLower(text))
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.intent
			}
		}
	}
	return models.IntentNone
}

// extractFilters pulls type/floor/capacity constraints out of a free-space
// query, mirroring the keyword filters of the rule-based path.
func extractFilters(text string) models.QueryFilters {
	folded := foldAccents(strings.ToLower(text))
	var f models.QueryFilters
	switch {
	case strings.Contains(folded, "laboratorio"):
		f.Type = models.SpaceLaboratorio
	case strings.Contains(folded, "auditorio"):
		f.Type = models.SpaceAuditorio
	case strings.Contains(folded, "aula"):
		f.Type = models.SpaceAula
	}
	switch {
	case strings.Contains(folded, "piso 1") || strings.Contains(folded, "piso1"):
		f.Floor = models.FloorFirst
	case strings.Contains(folded, "piso 2") || strings.Contains(folded, "piso2"):
		f.Floor = models.FloorSecond
	case strings.Contains(folded, "planta baja"):
		f.Floor = models.FloorGround
	}
	if strings.Contains(folded, "capacidad 30") || strings.Contains(folded, "30+") {
		f.MinCapacity = 30
	}
	return f
}
