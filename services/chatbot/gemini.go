package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"reservas/models"
)

// SlotExtractor asks an external NLU for intent + slots. A nil result means
// the collaborator is absent for this query (failure, timeout, bad payload);
// the caller falls back to the rule-based path. The contract is purely
// advisory: nothing here may surface an error to the user.
type SlotExtractor interface {
	Extract(ctx context.Context, question string, dctx models.DialogueContext) *models.ResolvedQuery
}

const systemPrompt = `Eres un clasificador para un sistema de reservas de espacios.
Tu única tarea es interpretar la pregunta del usuario y devolver un JSON con:
- intent: uno de "capacidad", "ocupacion", "libres", "ayuda", o "unknown" si no aplica.
- date: fecha en YYYY-MM-DD si el usuario menciona una (hoy, mañana, 5 de febrero, 29/01/2026, etc.). null si no hay.
- space: nombre del espacio/aula si se menciona (ej: A-002, A002, aula 107). null si no.
- filters: objeto con type (aula|laboratorio|auditorio), floor (piso_1|piso_2|planta_baja), min_capacity (número). Solo incluir keys que el usuario pida. {} si ninguno.
- confidence: número entre 0 y 1. Usa confianza baja (ej. 0.3) si la pregunta no es sobre reservas/espacios o es ambigua.
- secondary_intent: si el usuario pide DOS cosas distintas en una frase, pon aquí el segundo intent. null si solo pide una cosa.
Responde ÚNICAMENTE con un JSON válido, sin markdown ni texto extra.`

// GeminiExtractor implements SlotExtractor on the Gemini API.
type GeminiExtractor struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiExtractor builds the extractor. An empty API key yields an error;
// the caller then simply wires no extractor and the chatbot runs rule-based.
func NewGeminiExtractor(apiKey string, timeout time.Duration) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: no API key configured")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)
	return &GeminiExtractor{model: model, timeout: timeout}, nil
}

// nluResult is the raw wire shape of the NLU response.
type nluResult struct {
	Intent          string     `json:"intent"`
	Date            string     `json:"date"`
	Space           string     `json:"space"`
	Filters         nluFilters `json:"filters"`
	Confidence      float64    `json:"confidence"`
	SecondaryIntent string     `json:"secondary_intent"`
}

type nluFilters struct {
	Type        string `json:"type"`
	Floor       string `json:"floor"`
	MinCapacity int    `json:"min_capacity"`
}

// Extract runs one bounded NLU attempt. Any failure class collapses to nil:
// never retried, never fatal.
func (g *GeminiExtractor) Extract(ctx context.Context, question string, dctx models.DialogueContext) *models.ResolvedQuery {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	userContent := "Pregunta del usuario: " + question
	if dctx.LastDate != "" || dctx.LastIntent != "" {
		userContent += fmt.Sprintf("\nContexto: last_date=%s, last_intent=%s", dctx.LastDate, dctx.LastIntent)
	}

	resp, err := g.model.GenerateContent(callCtx, genai.Text(systemPrompt+"\n\n"+userContent))
	if err != nil {
		return nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parseNLUResponse(sb.String())
}

// parseNLUResponse normalizes the model's JSON into a ResolvedQuery, shedding
// markdown fences and everything outside the allowed value sets. Space names
// stay raw here; the resolver matches them against the real space list. A nil
// return means the response was unusable.
func parseNLUResponse(raw string) *models.ResolvedQuery {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		if idx := strings.Index(raw, "\n"); idx >= 0 {
			raw = raw[idx+1:]
		}
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	var out nluResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}

	intent := models.Intent(strings.ToLower(strings.TrimSpace(out.Intent)))
	if !models.AllowedIntents[intent] {
		intent = models.IntentNone
	}
	secondary := models.Intent(strings.ToLower(strings.TrimSpace(out.SecondaryIntent)))
	if !models.AllowedIntents[secondary] {
		secondary = ""
	}

	confidence := out.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	q := &models.ResolvedQuery{
		Intent:          intent,
		Date:            strings.TrimSpace(out.Date),
		Confidence:      confidence,
		SecondaryIntent: secondary,
	}
	if !isoRe.MatchString(q.Date) {
		q.Date = ""
	}
	if sp := strings.TrimSpace(out.Space); sp != "" {
		// Carried as a name-only stub until resolved against the space list.
		q.Space = &models.Space{Name: sp}
	}
	switch models.SpaceType(out.Filters.Type) {
	case models.SpaceAula, models.SpaceLaboratorio, models.SpaceAuditorio:
		q.Filters.Type = models.SpaceType(out.Filters.Type)
	}
	switch models.Floor(out.Filters.Floor) {
	case models.FloorGround, models.FloorFirst, models.FloorSecond:
		q.Filters.Floor = models.Floor(out.Filters.Floor)
	}
	if out.Filters.MinCapacity > 0 {
		q.Filters.MinCapacity = out.Filters.MinCapacity
	}
	return q
}
