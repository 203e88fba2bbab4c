package scheduleRepo

import (
	"context"

	"reservas/models"
)

// ScheduleRepository exposes access to the class_schedules collection.
// Weekday uses the Monday=0 convention, matching the date parser.
type ScheduleRepository interface {
	// List filters by space and/or weekday; pass "" / -1 to skip a filter.
	List(ctx context.Context, spaceID string, weekday int) ([]models.ClassSchedule, error)
	GetByID(ctx context.Context, scheduleID string) (*models.ClassSchedule, error)
	Create(ctx context.Context, s *models.ClassSchedule) error
	Update(ctx context.Context, s *models.ClassSchedule) error
	Delete(ctx context.Context, scheduleID string) error
}
