package chatbot

import (
	"testing"
	"time"

	"reservas/models"
)

func TestNewGeminiExtractorRequiresKey(t *testing.T) {
	if _, err := NewGeminiExtractor("", 5*time.Second); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestParseNLUResponse(t *testing.T) {
	raw := `{"intent":"libres","secondary_intent":"capacidad","date":"2026-01-29","space":"A-002","confidence":0.85,"filters":{"type":"aula","floor":"piso_1","min_capacity":30}}`
	q := parseNLUResponse(raw)
	if q == nil {
		t.Fatal("got nil")
	}
	if q.Intent != models.IntentLibres || q.SecondaryIntent != models.IntentCapacidad {
		t.Errorf("intents = %q/%q", q.Intent, q.SecondaryIntent)
	}
	if q.Date != "2026-01-29" {
		t.Errorf("Date = %q", q.Date)
	}
	if q.Space == nil || q.Space.Name != "A-002" {
		t.Errorf("Space = %v", q.Space)
	}
	if q.Confidence != 0.85 {
		t.Errorf("Confidence = %v", q.Confidence)
	}
	if q.Filters.Type != models.SpaceAula || q.Filters.Floor != models.FloorFirst || q.Filters.MinCapacity != 30 {
		t.Errorf("Filters = %+v", q.Filters)
	}
}

func TestParseNLUResponseMarkdownFence(t *testing.T) {
	raw := "```json\n{\"intent\":\"ocupacion\",\"confidence\":0.7}\n```"
	q := parseNLUResponse(raw)
	if q == nil || q.Intent != models.IntentOcupacion {
		t.Errorf("got %+v", q)
	}
}

func TestParseNLUResponseSanitizes(t *testing.T) {
	raw := `{"intent":"reservar","date":"mañana","confidence":3.5,"filters":{"type":"gimnasio","floor":"piso_9","min_capacity":-2}}`
	q := parseNLUResponse(raw)
	if q == nil {
		t.Fatal("got nil")
	}
	if q.Intent != models.IntentNone {
		t.Errorf("Intent = %q, want none for an out-of-set value", q.Intent)
	}
	if q.Date != "" {
		t.Errorf("Date = %q, want empty for a non-ISO value", q.Date)
	}
	if q.Confidence != 1 {
		t.Errorf("Confidence = %v, want clamped to 1", q.Confidence)
	}
	if q.Filters != (models.QueryFilters{}) {
		t.Errorf("Filters = %+v, want empty", q.Filters)
	}
}

func TestParseNLUResponseGarbage(t *testing.T) {
	for _, raw := range []string{"", "no soy json", "```\n\n```"} {
		if q := parseNLUResponse(raw); q != nil {
			t.Errorf("parseNLUResponse(%q) = %+v, want nil", raw, q)
		}
	}
}
