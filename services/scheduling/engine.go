package scheduling

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	reservationRepo "reservas/database/repository/reservation"
	scheduleRepo "reservas/database/repository/schedule"
	"reservas/models"
)

// Engine merges the two busy-interval sources for a space (weekly class
// blocks and active reservations) and answers conflict queries over them.
// It holds no mutable state; every call is an independent unit of work.
type Engine struct {
	Reservations reservationRepo.ReservationRepository
	Schedules    scheduleRepo.ScheduleRepository
	Logger       *zap.Logger
}

// Weekday returns the Monday=0 weekday of an ISO date, or an error for
// unparseable input. The same convention is used by the schedule store and
// the date parser.
func Weekday(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return (int(t.Weekday()) + 6) % 7, nil
}

// BusyIntervals returns the merged busy view for one space and date: class
// schedules whose weekday matches plus pending/approved reservations for the
// exact date. Rejected reservations never block.
func (e *Engine) BusyIntervals(ctx context.Context, spaceID, date string) ([]models.BusyInterval, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return nil, err
	}

	schedules, err := e.Schedules.List(ctx, spaceID, weekday)
	if err != nil {
		return nil, fmt.Errorf("fetching class schedules: %w", err)
	}
	reservations, err := e.Reservations.ListBusy(ctx, spaceID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching reservations: %w", err)
	}

	busy := make([]models.BusyInterval, 0, len(schedules)+len(reservations))
	for _, s := range schedules {
		iv, err := s.Interval()
		if err != nil {
			e.Logger.Warn("skipping malformed class schedule", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		busy = append(busy, models.BusyInterval{TimeInterval: iv, Kind: models.BusyClass, SourceID: s.ID})
	}
	for _, r := range reservations {
		iv, err := r.Interval()
		if err != nil {
			e.Logger.Warn("skipping malformed reservation", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		busy = append(busy, models.BusyInterval{TimeInterval: iv, Kind: models.BusyReservation, SourceID: r.ID})
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start < busy[j].Start })
	return busy, nil
}

// CheckConflict reports whether a candidate booking collides with any busy
// interval on the space. It fails closed: if the busy set cannot be
// retrieved, the booking is reported as conflicting rather than let through
// unchecked.
func (e *Engine) CheckConflict(ctx context.Context, spaceID, date, start, end, excludeID string) bool {
	candidate, err := models.NewTimeInterval(start, end)
	if err != nil {
		return true
	}
	busy, err := e.BusyIntervals(ctx, spaceID, date)
	if err != nil {
		e.Logger.Error("conflict check failing closed: busy intervals unavailable",
			zap.String("spaceID", spaceID), zap.String("date", date), zap.Error(err))
		return true
	}
	for _, b := range busy {
		if excludeID != "" && b.Kind == models.BusyReservation && b.SourceID == excludeID {
			continue
		}
		if Overlaps(candidate, b.TimeInterval) {
			return true
		}
	}
	return false
}

// FindClassConflict returns the class block overlapping the candidate
// window, if any. A date that does not parse yields no conflict, matching
// the reservation validator which rejects bad dates before reaching here.
func (e *Engine) FindClassConflict(ctx context.Context, spaceID, date, start, end string) (*models.BusyInterval, error) {
	candidate, err := models.NewTimeInterval(start, end)
	if err != nil {
		return nil, err
	}
	weekday, err := Weekday(date)
	if err != nil {
		return nil, nil
	}
	schedules, err := e.Schedules.List(ctx, spaceID, weekday)
	if err != nil {
		return nil, fmt.Errorf("fetching class schedules: %w", err)
	}
	for _, s := range schedules {
		iv, ivErr := s.Interval()
		if ivErr != nil {
			continue
		}
		if Overlaps(candidate, iv) {
			return &models.BusyInterval{TimeInterval: iv, Kind: models.BusyClass, SourceID: s.ID}, nil
		}
	}
	return nil, nil
}

// FormatBusy renders a busy set as "HH:MM-HH:MM (kind); ..." sorted by start,
// the summary line the chatbot embeds in occupancy answers.
func FormatBusy(busy []models.BusyInterval) string {
	if len(busy) == 0 {
		return "No hay ocupación en ese día."
	}
	sorted := make([]models.BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	parts := make([]string, 0, len(sorted))
	for _, b := range sorted {
		parts = append(parts, fmt.Sprintf("%s-%s (%s)", b.Start, b.End, b.Kind))
	}
	return strings.Join(parts, "; ")
}
