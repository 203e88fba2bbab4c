package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scheduleRepo "reservas/database/repository/schedule"
	spaceRepo "reservas/database/repository/space"
	"reservas/models"
	"reservas/services/scheduling"
)

var (
	ErrNotFound     = errors.New("class schedule not found")
	ErrInvalidInput = errors.New("invalid class schedule input")
	// ErrOverlap means the block collides with another class in the same
	// space on the same weekday.
	ErrOverlap = errors.New("class schedule overlaps an existing block")
)

// ScheduleService manages the weekly class grid that reservations are
// validated against.
type ScheduleService interface {
	List(ctx context.Context, spaceID string, weekday int) ([]models.ClassSchedule, error)
	GetByID(ctx context.Context, scheduleID string) (*models.ClassSchedule, error)
	Create(ctx context.Context, s models.ClassSchedule) (*models.ClassSchedule, error)
	Update(ctx context.Context, scheduleID string, s models.ClassSchedule) (*models.ClassSchedule, error)
	Delete(ctx context.Context, scheduleID string) error
}

type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Spaces spaceRepo.SpaceRepository
	Logger *zap.Logger
}

func (s *DefaultScheduleService) List(ctx context.Context, spaceID string, weekday int) ([]models.ClassSchedule, error) {
	return s.Repo.List(ctx, spaceID, weekday)
}

func (s *DefaultScheduleService) GetByID(ctx context.Context, scheduleID string) (*models.ClassSchedule, error) {
	sc, err := s.Repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("looking up class schedule: %w", err)
	}
	if sc == nil {
		return nil, ErrNotFound
	}
	return sc, nil
}

func (s *DefaultScheduleService) Create(ctx context.Context, in models.ClassSchedule) (*models.ClassSchedule, error) {
	interval, err := s.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, in.SpaceID, in.Weekday, interval, ""); err != nil {
		return nil, err
	}
	in.ID = uuid.New().String()
	in.StartTime = interval.Start
	in.EndTime = interval.End
	if err := s.Repo.Create(ctx, &in); err != nil {
		return nil, fmt.Errorf("storing class schedule: %w", err)
	}
	s.Logger.Info("class schedule created",
		zap.String("scheduleID", in.ID), zap.String("spaceID", in.SpaceID), zap.Int("weekday", in.Weekday))
	return &in, nil
}

func (s *DefaultScheduleService) Update(ctx context.Context, scheduleID string, in models.ClassSchedule) (*models.ClassSchedule, error) {
	existing, err := s.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	interval, err := s.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, in.SpaceID, in.Weekday, interval, existing.ID); err != nil {
		return nil, err
	}
	existing.SpaceID = in.SpaceID
	existing.Weekday = in.Weekday
	existing.StartTime = interval.Start
	existing.EndTime = interval.End
	existing.Description = in.Description
	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating class schedule: %w", err)
	}
	return existing, nil
}

func (s *DefaultScheduleService) Delete(ctx context.Context, scheduleID string) error {
	if _, err := s.GetByID(ctx, scheduleID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, scheduleID); err != nil {
		return fmt.Errorf("deleting class schedule: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) validate(ctx context.Context, in *models.ClassSchedule) (models.TimeInterval, error) {
	if in.SpaceID == "" {
		return models.TimeInterval{}, fmt.Errorf("%w: space is required", ErrInvalidInput)
	}
	if in.Weekday < 0 || in.Weekday > 6 {
		return models.TimeInterval{}, fmt.Errorf("%w: weekday %d out of range 0-6 (Monday=0)", ErrInvalidInput, in.Weekday)
	}
	sp, err := s.Spaces.GetByID(ctx, in.SpaceID)
	if err != nil {
		return models.TimeInterval{}, fmt.Errorf("looking up space: %w", err)
	}
	if sp == nil {
		return models.TimeInterval{}, fmt.Errorf("%w: unknown space %q", ErrInvalidInput, in.SpaceID)
	}
	interval, err := models.NewTimeInterval(in.StartTime, in.EndTime)
	if err != nil {
		return models.TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return interval, nil
}

func (s *DefaultScheduleService) checkOverlap(ctx context.Context, spaceID string, weekday int, interval models.TimeInterval, excludeID string) error {
	others, err := s.Repo.List(ctx, spaceID, weekday)
	if err != nil {
		return fmt.Errorf("listing class schedules: %w", err)
	}
	for _, other := range others {
		if other.ID == excludeID {
			continue
		}
		iv, ivErr := other.Interval()
		if ivErr != nil {
			continue
		}
		if scheduling.Overlaps(interval, iv) {
			return fmt.Errorf("%w: choca con el bloque %s-%s", ErrOverlap, iv.Start, iv.End)
		}
	}
	return nil
}
