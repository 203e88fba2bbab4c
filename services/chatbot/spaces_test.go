package chatbot

import (
	"testing"

	"reservas/models"
)

var testSpaces = []models.Space{
	{ID: "1", Name: "A-002", Type: models.SpaceAula, Capacity: 40},
	{ID: "2", Name: "A-101", Type: models.SpaceAula, Capacity: 30},
	{ID: "3", Name: "Lab Redes", Type: models.SpaceLaboratorio, Capacity: 20},
	{ID: "4", Name: "Auditorio Principal", Type: models.SpaceAuditorio, Capacity: 200},
}

func TestResolveSpaceNormalizedForms(t *testing.T) {
	// Punctuation and spacing never matter.
	for _, text := range []string{"a002", "A-002", "A 002", "capacidad a-002", "ocupación del A002 hoy"} {
		sp := ResolveSpace(text, testSpaces)
		if sp == nil || sp.ID != "1" {
			t.Errorf("ResolveSpace(%q) = %v, want A-002", text, sp)
		}
	}
}

func TestResolveSpaceByToken(t *testing.T) {
	sp := ResolveSpace("está libre el lab redes mañana?", testSpaces)
	if sp == nil || sp.ID != "3" {
		t.Errorf("got %v, want Lab Redes", sp)
	}
	sp = ResolveSpace("qué hay en el auditorio", testSpaces)
	if sp == nil || sp.ID != "4" {
		t.Errorf("got %v, want Auditorio Principal", sp)
	}
}

func TestResolveSpaceNoMatch(t *testing.T) {
	for _, text := range []string{"", "   ", "espacios libres mañana", "sala z9"} {
		if sp := ResolveSpace(text, testSpaces); sp != nil {
			t.Errorf("ResolveSpace(%q) = %v, want nil", text, sp)
		}
	}
	if sp := ResolveSpace("a002", nil); sp != nil {
		t.Errorf("empty space list must resolve to nil, got %v", sp)
	}
}

func TestResolveSpaceExactBeatsSubstring(t *testing.T) {
	spaces := []models.Space{
		{ID: "long", Name: "A-10"},
		{ID: "exact", Name: "A-101"},
	}
	sp := ResolveSpace("a101", spaces)
	if sp == nil || sp.ID != "exact" {
		t.Errorf("got %v, want the exact match", sp)
	}
}

func TestNormalizeAlnum(t *testing.T) {
	cases := map[string]string{
		"A-002":     "a002",
		"A 002":     "a002",
		"Lab Redes": "labredes",
		"¡¿!":       "",
	}
	for in, want := range cases {
		if got := normalizeAlnum(in); got != want {
			t.Errorf("normalizeAlnum(%q) = %q, want %q", in, got, want)
		}
	}
}
