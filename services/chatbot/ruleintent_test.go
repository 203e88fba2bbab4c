package chatbot

import (
	"testing"

	"reservas/models"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		text string
		want models.Intent
	}{
		{"ayuda", models.IntentAyuda},
		{"¿qué haces?", models.IntentAyuda},
		{"capacidad del A-002", models.IntentCapacidad},
		{"¿cuántas personas caben en el aula?", models.IntentCapacidad},
		{"cuantas personas caben", models.IntentCapacidad},
		{"ocupación del A-002 hoy", models.IntentOcupacion},
		{"ocupacion de mañana", models.IntentOcupacion},
		{"disponibilidad del aula A-002", models.IntentOcupacion},
		{"espacios libres mañana", models.IntentLibres},
		{"qué aulas hay disponibles", models.IntentLibres},
		{"hola", models.IntentNone},
		{"", models.IntentNone},
	}
	for _, tc := range cases {
		if got := ClassifyIntent(tc.text); got != tc.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractFilters(t *testing.T) {
	f := extractFilters("laboratorios libres en el piso 1 con capacidad 30")
	if f.Type != models.SpaceLaboratorio {
		t.Errorf("Type = %q, want laboratorio", f.Type)
	}
	if f.Floor != models.FloorFirst {
		t.Errorf("Floor = %q, want piso_1", f.Floor)
	}
	if f.MinCapacity != 30 {
		t.Errorf("MinCapacity = %d, want 30", f.MinCapacity)
	}

	f = extractFilters("aulas libres en planta baja")
	if f.Type != models.SpaceAula || f.Floor != models.FloorGround {
		t.Errorf("got %+v, want aula on planta_baja", f)
	}

	if f := extractFilters("espacios libres mañana"); f != (models.QueryFilters{}) {
		t.Errorf("got %+v, want empty filters", f)
	}
}
