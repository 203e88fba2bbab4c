package scheduling

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"reservas/models"
)

// fakeReservationRepo returns canned reservations for ListBusy; everything
// else is unused by the engine.
type fakeReservationRepo struct {
	busy []models.Reservation
	err  error
}

func (f *fakeReservationRepo) ListBusy(_ context.Context, _, _ string) ([]models.Reservation, error) {
	return f.busy, f.err
}

func (f *fakeReservationRepo) Create(context.Context, *models.Reservation) error { return nil }
func (f *fakeReservationRepo) GetByID(context.Context, string) (*models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetByUser(context.Context, string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetPending(context.Context) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetAll(context.Context) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) ListBySpaceAndDate(context.Context, string, string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) GetApprovedByDate(context.Context, string, bool) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) UpdateStatus(context.Context, string, models.ReservationStatus, string, string) error {
	return nil
}
func (f *fakeReservationRepo) Update(context.Context, *models.Reservation) error  { return nil }
func (f *fakeReservationRepo) Delete(context.Context, string) error               { return nil }
func (f *fakeReservationRepo) MarkConfirmationSent(context.Context, string) error { return nil }
func (f *fakeReservationRepo) MarkReminderSent(context.Context, string) error     { return nil }

type fakeScheduleRepo struct {
	schedules []models.ClassSchedule
	err       error

	gotWeekday int
}

func (f *fakeScheduleRepo) List(_ context.Context, _ string, weekday int) ([]models.ClassSchedule, error) {
	f.gotWeekday = weekday
	return f.schedules, f.err
}

func (f *fakeScheduleRepo) GetByID(context.Context, string) (*models.ClassSchedule, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) Create(context.Context, *models.ClassSchedule) error { return nil }
func (f *fakeScheduleRepo) Update(context.Context, *models.ClassSchedule) error { return nil }
func (f *fakeScheduleRepo) Delete(context.Context, string) error                { return nil }

func newTestEngine(res *fakeReservationRepo, sch *fakeScheduleRepo) *Engine {
	return &Engine{Reservations: res, Schedules: sch, Logger: zap.NewNop()}
}

func TestWeekday(t *testing.T) {
	// 2026-01-29 is a Thursday.
	got, err := Weekday("2026-01-29")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("Weekday(2026-01-29) = %d, want 3 (Monday=0)", got)
	}
	if _, err := Weekday("29/01/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestBusyIntervalsMergesSources(t *testing.T) {
	res := &fakeReservationRepo{busy: []models.Reservation{
		{ID: "r1", StartTime: "14:00", EndTime: "15:00", Status: models.StatusPending},
	}}
	sch := &fakeScheduleRepo{schedules: []models.ClassSchedule{
		{ID: "c1", StartTime: "09:00", EndTime: "10:00"},
	}}
	e := newTestEngine(res, sch)

	busy, err := e.BusyIntervals(context.Background(), "sp1", "2026-01-29")
	if err != nil {
		t.Fatal(err)
	}
	if len(busy) != 2 {
		t.Fatalf("got %d busy intervals, want 2", len(busy))
	}
	if busy[0].Kind != models.BusyClass || busy[0].Start != "09:00" {
		t.Errorf("first interval = %+v, want the 09:00 class", busy[0])
	}
	if busy[1].Kind != models.BusyReservation || busy[1].SourceID != "r1" {
		t.Errorf("second interval = %+v, want reservation r1", busy[1])
	}
	// Thursday under the Monday=0 convention.
	if sch.gotWeekday != 3 {
		t.Errorf("schedule queried with weekday %d, want 3", sch.gotWeekday)
	}
}

func TestBusyIntervalsSkipsMalformed(t *testing.T) {
	res := &fakeReservationRepo{busy: []models.Reservation{
		{ID: "bad", StartTime: "15:00", EndTime: "14:00", Status: models.StatusApproved},
		{ID: "ok", StartTime: "10:00", EndTime: "11:00", Status: models.StatusApproved},
	}}
	e := newTestEngine(res, &fakeScheduleRepo{})

	busy, err := e.BusyIntervals(context.Background(), "sp1", "2026-01-29")
	if err != nil {
		t.Fatal(err)
	}
	if len(busy) != 1 || busy[0].SourceID != "ok" {
		t.Errorf("got %+v, want only the valid reservation", busy)
	}
}

func TestCheckConflict(t *testing.T) {
	res := &fakeReservationRepo{busy: []models.Reservation{
		{ID: "r1", StartTime: "09:00", EndTime: "10:00", Status: models.StatusApproved},
	}}
	e := newTestEngine(res, &fakeScheduleRepo{})
	ctx := context.Background()

	if !e.CheckConflict(ctx, "sp1", "2026-01-29", "09:30", "10:30", "") {
		t.Error("overlapping window must conflict")
	}
	if e.CheckConflict(ctx, "sp1", "2026-01-29", "10:00", "11:00", "") {
		t.Error("adjacent window must not conflict")
	}
	// Excluding the conflicting reservation itself frees the slot.
	if e.CheckConflict(ctx, "sp1", "2026-01-29", "09:30", "10:30", "r1") {
		t.Error("window must not conflict with the excluded reservation")
	}
}

func TestCheckConflictFailsClosed(t *testing.T) {
	res := &fakeReservationRepo{err: errors.New("storage down")}
	e := newTestEngine(res, &fakeScheduleRepo{})

	if !e.CheckConflict(context.Background(), "sp1", "2026-01-29", "09:00", "10:00", "") {
		t.Error("storage failure must report a conflict, not allow the booking")
	}
	// Malformed candidate input also fails closed.
	if !e.CheckConflict(context.Background(), "sp1", "2026-01-29", "10:00", "09:00", "") {
		t.Error("inverted window must report a conflict")
	}
}

func TestFindClassConflict(t *testing.T) {
	sch := &fakeScheduleRepo{schedules: []models.ClassSchedule{
		{ID: "c1", StartTime: "09:00", EndTime: "10:00"},
	}}
	e := newTestEngine(&fakeReservationRepo{}, sch)

	hit, err := e.FindClassConflict(context.Background(), "sp1", "2026-01-29", "09:30", "10:30")
	if err != nil {
		t.Fatal(err)
	}
	if hit == nil || hit.Start != "09:00" || hit.End != "10:00" {
		t.Errorf("got %+v, want the 09:00-10:00 class block", hit)
	}

	miss, err := e.FindClassConflict(context.Background(), "sp1", "2026-01-29", "11:00", "12:00")
	if err != nil {
		t.Fatal(err)
	}
	if miss != nil {
		t.Errorf("got %+v, want no conflict", miss)
	}
}

func TestFormatBusy(t *testing.T) {
	if got := FormatBusy(nil); got != "No hay ocupación en ese día." {
		t.Errorf("empty summary = %q", got)
	}
	busySet := []models.BusyInterval{
		busy("09:00", "10:00", models.BusyClass),
		busy("14:00", "15:00", models.BusyReservation),
	}
	want := "09:00-10:00 (clase); 14:00-15:00 (reserva)"
	if got := FormatBusy(busySet); got != want {
		t.Errorf("FormatBusy = %q, want %q", got, want)
	}
}
