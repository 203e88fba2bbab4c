package chatbot

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"reservas/models"
)

// stubExtractor returns a fixed NLU result.
type stubExtractor struct {
	result *models.ResolvedQuery
	called bool
}

func (s *stubExtractor) Extract(context.Context, string, models.DialogueContext) *models.ResolvedQuery {
	s.called = true
	return s.result
}

func fixedNow() time.Time {
	return time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC)
}

func newResolver(ext SlotExtractor) *HybridResolver {
	return &HybridResolver{
		Extractor:     ext,
		MinConfidence: 0.6,
		Logger:        zap.NewNop(),
		Now:           fixedNow,
	}
}

func TestResolveWithoutExtractor(t *testing.T) {
	h := newResolver(nil)
	q := h.Resolve(context.Background(), "ocupación del A-002 mañana", models.DialogueContext{}, testSpaces)

	if q.Intent != models.IntentOcupacion {
		t.Errorf("Intent = %q, want ocupacion", q.Intent)
	}
	if q.Date != "2026-01-27" {
		t.Errorf("Date = %q, want 2026-01-27", q.Date)
	}
	if q.Space == nil || q.Space.ID != "1" {
		t.Errorf("Space = %v, want A-002", q.Space)
	}
}

func TestResolveRejectsLowConfidence(t *testing.T) {
	ext := &stubExtractor{result: &models.ResolvedQuery{
		Intent:     models.IntentCapacidad,
		Confidence: 0.3,
	}}
	h := newResolver(ext)

	q := h.Resolve(context.Background(), "espacios libres hoy", models.DialogueContext{}, testSpaces)
	if !ext.called {
		t.Fatal("extractor was not consulted")
	}
	// Below the threshold the rule-based classification wins.
	if q.Intent != models.IntentLibres {
		t.Errorf("Intent = %q, want the rule-based libres", q.Intent)
	}
}

func TestResolveRejectsUnknownIntent(t *testing.T) {
	ext := &stubExtractor{result: &models.ResolvedQuery{
		Intent:     models.Intent("reservar"),
		Confidence: 0.95,
	}}
	h := newResolver(ext)

	q := h.Resolve(context.Background(), "capacidad A-002", models.DialogueContext{}, testSpaces)
	if q.Intent != models.IntentCapacidad {
		t.Errorf("Intent = %q, want the rule-based capacidad", q.Intent)
	}
}

func TestResolveServerDateWinsOverModel(t *testing.T) {
	ext := &stubExtractor{result: &models.ResolvedQuery{
		Intent:     models.IntentOcupacion,
		Date:       "2030-12-31",
		Confidence: 0.9,
	}}
	h := newResolver(ext)

	q := h.Resolve(context.Background(), "ocupación del A-002 mañana", models.DialogueContext{}, testSpaces)
	if q.Date != "2026-01-27" {
		t.Errorf("Date = %q, want the server-resolved 2026-01-27", q.Date)
	}
	if q.Intent != models.IntentOcupacion {
		t.Errorf("Intent = %q, want the accepted NLU intent", q.Intent)
	}
}

func TestResolveModelSpaceNameReresolved(t *testing.T) {
	ext := &stubExtractor{result: &models.ResolvedQuery{
		Intent:     models.IntentCapacidad,
		Space:      &models.Space{Name: "a 002"},
		Confidence: 0.8,
	}}
	h := newResolver(ext)

	// The question itself names no space, so the model's name is mapped
	// against the real list.
	q := h.Resolve(context.Background(), "cuántos caben ahí", models.DialogueContext{}, testSpaces)
	if q.Space == nil || q.Space.ID != "1" {
		t.Errorf("Space = %v, want A-002 resolved from the model's name", q.Space)
	}

	ext.result.Space = &models.Space{Name: "sala inexistente"}
	q = h.Resolve(context.Background(), "cuántos caben ahí", models.DialogueContext{}, testSpaces)
	if q.Space != nil {
		t.Errorf("Space = %v, want nil for an unknown model name", q.Space)
	}
}
