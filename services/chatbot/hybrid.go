package chatbot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"reservas/models"
)

// HybridResolver produces one normalized ResolvedQuery per question,
// arbitrating between the external NLU and the deterministic rule-based
// path. The NLU is advisory: its result is trusted only above the confidence
// threshold and with an intent in the allowed set, and the server-side date
// resolver always wins over the model's date field when it finds one — the
// system, not the model, is the source of truth for calendar semantics.
type HybridResolver struct {
	Extractor     SlotExtractor // nil when no NLU is configured
	MinConfidence float64
	Logger        *zap.Logger
	Now           func() time.Time
}

func (h *HybridResolver) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Resolve classifies a question against the known space list.
func (h *HybridResolver) Resolve(ctx context.Context, question string, dctx models.DialogueContext, spaces []models.Space) models.ResolvedQuery {
	serverDate := ResolveDate(question, h.now())
	serverSpace := ResolveSpace(question, spaces)

	if ext := h.tryExternal(ctx, question, dctx); ext != nil {
		q := *ext
		if serverDate != "" {
			q.Date = serverDate
		}
		if serverSpace != nil {
			q.Space = serverSpace
		} else if q.Space != nil {
			// The model returned a name; only keep it if it maps to a real space.
			q.Space = ResolveSpace(q.Space.Name, spaces)
		}
		return q
	}

	return models.ResolvedQuery{
		Intent:  ClassifyIntent(question),
		Date:    serverDate,
		Space:   serverSpace,
		Filters: extractFilters(question),
	}
}

// tryExternal runs the single bounded NLU attempt and applies the acceptance
// rule. Nil means absent or rejected; the reason is logged, never surfaced.
func (h *HybridResolver) tryExternal(ctx context.Context, question string, dctx models.DialogueContext) *models.ResolvedQuery {
	if h.Extractor == nil {
		return nil
	}
	ext := h.Extractor.Extract(ctx, question, dctx)
	if ext == nil {
		h.Logger.Debug("NLU absent, using rule-based resolver")
		return nil
	}
	if ext.Confidence < h.MinConfidence || ext.Intent == models.IntentNone || !models.AllowedIntents[ext.Intent] {
		h.Logger.Debug("NLU result rejected",
			zap.Float64("confidence", ext.Confidence),
			zap.String("intent", string(ext.Intent)))
		return nil
	}
	return ext
}
