package schedule

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"reservas/models"
)

type memScheduleRepo struct {
	byID map[string]*models.ClassSchedule
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{byID: make(map[string]*models.ClassSchedule)}
}

func (m *memScheduleRepo) List(_ context.Context, spaceID string, weekday int) ([]models.ClassSchedule, error) {
	var out []models.ClassSchedule
	for _, s := range m.byID {
		if spaceID != "" && s.SpaceID != spaceID {
			continue
		}
		if weekday >= 0 && s.Weekday != weekday {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *memScheduleRepo) GetByID(_ context.Context, id string) (*models.ClassSchedule, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memScheduleRepo) Create(_ context.Context, s *models.ClassSchedule) error {
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memScheduleRepo) Update(_ context.Context, s *models.ClassSchedule) error {
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memSpaceRepo struct {
	spaces []models.Space
}

func (m *memSpaceRepo) GetAll(context.Context) ([]models.Space, error) { return m.spaces, nil }
func (m *memSpaceRepo) GetByID(_ context.Context, id string) (*models.Space, error) {
	for i := range m.spaces {
		if m.spaces[i].ID == id {
			return &m.spaces[i], nil
		}
	}
	return nil, nil
}
func (m *memSpaceRepo) GetByType(context.Context, models.SpaceType) ([]models.Space, error) {
	return nil, nil
}
func (m *memSpaceRepo) Create(context.Context, *models.Space) error { return nil }

func newService() (*DefaultScheduleService, *memScheduleRepo) {
	repo := newMemScheduleRepo()
	spaces := &memSpaceRepo{spaces: []models.Space{{ID: "sp1", Name: "A-002"}}}
	return &DefaultScheduleService{Repo: repo, Spaces: spaces, Logger: zap.NewNop()}, repo
}

func block(spaceID string, weekday int, start, end string) models.ClassSchedule {
	return models.ClassSchedule{SpaceID: spaceID, Weekday: weekday, StartTime: start, EndTime: end, Description: "Álgebra"}
}

func TestCreateSchedule(t *testing.T) {
	svc, repo := newService()
	created, err := svc.Create(context.Background(), block("sp1", 0, "09:00", "10:30"))
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("schedule got no id")
	}
	if len(repo.byID) != 1 {
		t.Errorf("stored %d schedules, want 1", len(repo.byID))
	}
}

func TestCreateScheduleValidation(t *testing.T) {
	svc, _ := newService()
	cases := []struct {
		name string
		in   models.ClassSchedule
	}{
		{"missing space", block("", 0, "09:00", "10:00")},
		{"unknown space", block("nope", 0, "09:00", "10:00")},
		{"weekday too big", block("sp1", 7, "09:00", "10:00")},
		{"weekday negative", block("sp1", -1, "09:00", "10:00")},
		{"inverted window", block("sp1", 0, "10:00", "09:00")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateScheduleRejectsOverlap(t *testing.T) {
	svc, _ := newService()
	if _, err := svc.Create(context.Background(), block("sp1", 0, "09:00", "10:30")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(context.Background(), block("sp1", 0, "10:00", "11:00")); !errors.Is(err, ErrOverlap) {
		t.Errorf("err = %v, want ErrOverlap", err)
	}
	// Another weekday is fine.
	if _, err := svc.Create(context.Background(), block("sp1", 1, "10:00", "11:00")); err != nil {
		t.Errorf("other weekday rejected: %v", err)
	}
	// Back-to-back on the same day is fine.
	if _, err := svc.Create(context.Background(), block("sp1", 0, "10:30", "11:30")); err != nil {
		t.Errorf("adjacent block rejected: %v", err)
	}
}

func TestUpdateScheduleExcludesSelf(t *testing.T) {
	svc, _ := newService()
	created, err := svc.Create(context.Background(), block("sp1", 0, "09:00", "10:30"))
	if err != nil {
		t.Fatal(err)
	}
	// Shifting within its own window must not self-conflict.
	updated, err := svc.Update(context.Background(), created.ID, block("sp1", 0, "09:30", "11:00"))
	if err != nil {
		t.Fatal(err)
	}
	if updated.StartTime != "09:30" || updated.EndTime != "11:00" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "missing", block("sp1", 0, "09:00", "10:00")); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSchedule(t *testing.T) {
	svc, repo := newService()
	created, _ := svc.Create(context.Background(), block("sp1", 0, "09:00", "10:30"))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.byID) != 0 {
		t.Error("schedule still stored")
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
