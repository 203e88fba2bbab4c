package reservationRepo

import (
	"context"

	"reservas/models"
)

// ReservationRepository exposes access to the reservations collection.
//
// ListBusy filters to status pending/approved: those are the only states that
// block a space for conflict checking.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	GetByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	GetPending(ctx context.Context) ([]models.Reservation, error)
	GetAll(ctx context.Context) ([]models.Reservation, error)
	ListBySpaceAndDate(ctx context.Context, spaceID, date string) ([]models.Reservation, error)
	ListBusy(ctx context.Context, spaceID, date string) ([]models.Reservation, error)
	GetApprovedByDate(ctx context.Context, date string, onlyWithoutReminder bool) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID string, status models.ReservationStatus, reviewedBy, rejectionReason string) error
	Update(ctx context.Context, r *models.Reservation) error
	Delete(ctx context.Context, reservationID string) error
	MarkConfirmationSent(ctx context.Context, reservationID string) error
	MarkReminderSent(ctx context.Context, reservationID string) error
}
