package chatbot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	spaceRepo "reservas/database/repository/space"
	"reservas/models"
	"reservas/services/scheduling"
	spacesvc "reservas/services/space"
)

const defaultPageSize = 8

// Service is the dialogue orchestrator. Answer is a pure function of
// (question, context): all carryover state arrives in the DialogueContext and
// leaves in the response; the service holds no per-conversation state.
type Service struct {
	Spaces   spaceRepo.SpaceRepository
	Engine   *scheduling.Engine
	Resolver *HybridResolver
	DayStart string // building opening, "07:00"
	DayEnd   string // building closing, "22:00"
	Logger   *zap.Logger
}

var clarifyDateChips = []models.ChatChip{
	{Label: "Hoy", Value: "hoy"},
	{Label: "Mañana", Value: "mañana"},
}

// Answer handles one chatbot turn.
func (s *Service) Answer(ctx context.Context, question string, dctx models.DialogueContext, page, pageSize int) models.ChatResponse {
	q := strings.TrimSpace(question)
	if q == "" {
		return answer("No entendí la pregunta.", nil, dctx)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	spaces, err := s.Spaces.GetAll(ctx)
	if err != nil {
		// Fail-open for display: resolution proceeds without a space list.
		s.Logger.Error("space list unavailable", zap.Error(err))
		spaces = nil
	}

	resolved := s.Resolver.Resolve(ctx, q, dctx, spaces)

	// Elliptical follow-up: a dateless "disponibilidad de X" right after a
	// free-space listing reuses that listing's date. Context never leaks
	// across intent families beyond this rule.
	if resolved.Date == "" && resolved.Space != nil &&
		dctx.LastIntent == models.IntentLibres && dctx.LastDate != "" &&
		strings.Contains(foldAccents(strings.ToLower(q)), "disponibilidad") {
		resolved.Date = dctx.LastDate
	}

	resp := s.dispatch(ctx, q, resolved, dctx, spaces, page, pageSize)
	if resolved.SecondaryIntent != "" && resolved.SecondaryIntent != resolved.Intent && resp.Kind == models.ChatAnswer {
		resp.Answer += fmt.Sprintf("\nTambién preguntaste por %s; hazme esa consulta por separado.", resolved.SecondaryIntent)
	}
	return resp
}

func (s *Service) dispatch(ctx context.Context, q string, resolved models.ResolvedQuery, dctx models.DialogueContext, spaces []models.Space, page, pageSize int) models.ChatResponse {
	switch resolved.Intent {
	case models.IntentAyuda:
		return answer(
			"Consultas rápidas: capacidad, ocupación y espacios libres. Ej: 'capacidad A-002', 'ocupación A-002 hoy', 'espacios libres mañana'.",
			nil, dctx)
	case models.IntentCapacidad:
		return s.answerCapacity(resolved, dctx, spaces)
	case models.IntentOcupacion:
		return s.answerOccupancy(ctx, resolved, dctx, spaces)
	case models.IntentLibres:
		return s.answerFree(ctx, resolved, dctx, spaces, page, pageSize)
	}

	// An unclassified query can still be a follow-up within the free-space
	// flow ("y el A-002?").
	if dctx.LastIntent == models.IntentLibres {
		resolved.Intent = models.IntentLibres
		return s.answerFree(ctx, resolved, dctx, spaces, page, pageSize)
	}

	return answer(
		"Consultas rápidas: 'capacidad A-002', 'ocupación A-002 hoy', 'espacios libres mañana'.",
		nil, dctx)
}

func (s *Service) answerCapacity(resolved models.ResolvedQuery, dctx models.DialogueContext, spaces []models.Space) models.ChatResponse {
	sp := resolved.Space
	if sp == nil {
		return clarifySpace(spaces, dctx)
	}
	text := fmt.Sprintf("%s: capacidad %d, tipo %s, piso %s",
		sp.Name, sp.Capacity, sp.Type, models.FloorLabels[spacesvc.ResolveFloor(*sp)])
	newCtx := dctx
	newCtx.LastSpace = sp
	newCtx.LastIntent = models.IntentCapacidad
	return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: sp, Context: newCtx}
}

func (s *Service) answerOccupancy(ctx context.Context, resolved models.ResolvedQuery, dctx models.DialogueContext, spaces []models.Space) models.ChatResponse {
	sp := resolved.Space
	if sp == nil {
		sp = dctx.LastSpace
	}
	if sp == nil {
		return clarifySpace(spaces, dctx)
	}

	date := resolved.Date
	if date == "" && dctx.LastIntent == models.IntentLibres && dctx.LastDate != "" {
		date = dctx.LastDate
	}
	if date == "" {
		// Same space as last turn: still the same flow, keep its date.
		if dctx.LastSpace != nil && dctx.LastSpace.ID == sp.ID && dctx.LastDate != "" {
			date = dctx.LastDate
		} else {
			return clarify("¿Para qué fecha? (hoy, mañana, 29/01/2026)", clarifyDateChips, dctx)
		}
	}

	occ := s.occupancy(ctx, sp.ID, date)
	newCtx := dctx
	newCtx.LastDate = date
	newCtx.LastSpace = sp
	newCtx.LastIntent = models.IntentOcupacion

	if len(occ.All) == 0 {
		text := fmt.Sprintf("%s está libre el %s (todo el día: %s-%s).", sp.Name, date, s.DayStart, s.DayEnd)
		return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: occ, Context: newCtx}
	}
	text := fmt.Sprintf("Bloques ocupados en %s el %s: %s.", sp.Name, date, occ.Summary)
	if len(occ.FreeBlocks) > 0 {
		text += " Libre: " + joinIntervals(occ.FreeBlocks)
	}
	return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: occ, Context: newCtx}
}

func (s *Service) answerFree(ctx context.Context, resolved models.ResolvedQuery, dctx models.DialogueContext, spaces []models.Space, page, pageSize int) models.ChatResponse {
	// A specific space inside a "libres" query means per-space availability,
	// staying inside the free-space flow.
	if sp := resolved.Space; sp != nil {
		date := resolved.Date
		if date == "" && dctx.LastIntent == models.IntentLibres && dctx.LastDate != "" {
			date = dctx.LastDate
		}
		if date == "" {
			resp := clarify("¿Para qué fecha? (hoy, mañana, 29/01/2026)", clarifyDateChips, dctx)
			resp.Context.LastIntent = models.IntentLibres
			resp.Context.LastSpace = sp
			return resp
		}

		occ := s.occupancy(ctx, sp.ID, date)
		newCtx := models.DialogueContext{LastDate: date, LastSpace: sp, LastIntent: models.IntentLibres}
		if len(occ.All) == 0 {
			text := fmt.Sprintf("%s está libre el %s (todo el día: %s-%s).", sp.Name, date, s.DayStart, s.DayEnd)
			return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: occ, Context: newCtx}
		}
		libres := "sin bloques libres"
		if len(occ.FreeBlocks) > 0 {
			libres = joinIntervals(occ.FreeBlocks)
		}
		text := fmt.Sprintf("%s (%s): Ocupado: %s. Libre: %s", sp.Name, date, occ.Summary, libres)
		return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: occ, Context: newCtx}
	}

	date := resolved.Date
	if date == "" && dctx.LastIntent == models.IntentLibres && dctx.LastDate != "" {
		date = dctx.LastDate
	}
	if date == "" {
		resp := clarify("¿Para qué fecha quieres ver espacios libres? (hoy, mañana, 29/01/2026)", clarifyDateChips, dctx)
		resp.Context.LastIntent = models.IntentLibres
		return resp
	}

	free := s.freeSpaces(ctx, spaces, date, resolved.Filters)
	total := len(free)
	if total == 0 {
		newCtx := dctx
		newCtx.LastIntent = models.IntentLibres
		newCtx.LastDate = date
		return answer(fmt.Sprintf("No encontré espacios libres en %s.", date), nil, newCtx)
	}

	paged := paginate(free, page, pageSize)
	groups := spacesvc.GroupByFloor(paged)
	var lines []string
	for _, g := range groups {
		var items []string
		for _, sp := range g.Spaces {
			items = append(items, fmt.Sprintf("  • %s (cap %d)", sp.Name, sp.Capacity))
		}
		lines = append(lines, g.Label+":\n"+strings.Join(items, "\n"))
	}

	newCtx := models.DialogueContext{LastDate: date, LastIntent: models.IntentLibres}
	data := models.FreeSpacesData{FreeSpaces: paged, Total: total, Page: page, PageSize: pageSize, AskSpecific: true}
	text := fmt.Sprintf("Libres el %s (%d):\n%s", date, total, strings.Join(lines, "\n"))
	return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: data, Context: newCtx}
}

// occupancy gathers the busy view and free partition for one space/date.
// Storage failures degrade to an empty busy set for this read-only display
// path (logged); booking validation fails closed instead, in the engine.
func (s *Service) occupancy(ctx context.Context, spaceID, date string) models.OccupancyData {
	busy, err := s.Engine.BusyIntervals(ctx, spaceID, date)
	if err != nil {
		s.Logger.Error("busy intervals unavailable for display",
			zap.String("spaceID", spaceID), zap.String("date", date), zap.Error(err))
		busy = nil
	}

	occ := models.OccupancyData{All: busy, Summary: scheduling.FormatBusy(busy)}
	for _, b := range busy {
		switch b.Kind {
		case models.BusyClass:
			occ.Classes = append(occ.Classes, b)
		case models.BusyReservation:
			occ.Reservations = append(occ.Reservations, b)
		}
	}
	occ.FreeBlocks = scheduling.ComputeFreeBlocks(busy, s.DayStart, s.DayEnd)
	return occ
}

// freeSpaces lists the spaces with no busy interval at all on the date,
// narrowed by the query filters.
func (s *Service) freeSpaces(ctx context.Context, spaces []models.Space, date string, f models.QueryFilters) []models.Space {
	var free []models.Space
	for _, sp := range spaces {
		if f.Type != "" && sp.Type != f.Type {
			continue
		}
		if f.Floor != "" && spacesvc.ResolveFloor(sp) != f.Floor {
			continue
		}
		if f.MinCapacity > 0 && sp.Capacity < f.MinCapacity {
			continue
		}
		busy, err := s.Engine.BusyIntervals(ctx, sp.ID, date)
		if err != nil {
			s.Logger.Error("busy intervals unavailable for free listing",
				zap.String("spaceID", sp.ID), zap.Error(err))
			continue
		}
		if len(busy) == 0 {
			free = append(free, sp)
		}
	}
	return free
}

func paginate(spaces []models.Space, page, pageSize int) []models.Space {
	start := (page - 1) * pageSize
	if start >= len(spaces) {
		return nil
	}
	end := start + pageSize
	if end > len(spaces) {
		end = len(spaces)
	}
	return spaces[start:end]
}

func joinIntervals(intervals []models.TimeInterval) string {
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, iv.String())
	}
	return strings.Join(parts, "; ")
}

func answer(text string, data any, dctx models.DialogueContext) models.ChatResponse {
	return models.ChatResponse{Answer: text, Kind: models.ChatAnswer, Data: data, Context: dctx}
}

func clarify(text string, chips []models.ChatChip, dctx models.DialogueContext) models.ChatResponse {
	return models.ChatResponse{Answer: text, Kind: models.ChatClarify, Chips: chips, Data: nil, Context: dctx}
}

// clarifySpace asks which space the user means, suggesting a few real names.
func clarifySpace(spaces []models.Space, dctx models.DialogueContext) models.ChatResponse {
	chips := make([]models.ChatChip, 0, 3)
	for _, sp := range spaces {
		if len(chips) == 3 {
			break
		}
		chips = append(chips, models.ChatChip{Label: sp.Name, Value: sp.Name})
	}
	return clarify("No encontré el espacio, ¿cuál te interesa? (ej: A-002)", chips, dctx)
}
