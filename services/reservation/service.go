package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	deletionRepo "reservas/database/repository/deletion"
	reservationRepo "reservas/database/repository/reservation"
	spaceRepo "reservas/database/repository/space"
	userRepo "reservas/database/repository/user"
	"reservas/models"
	"reservas/services/email"
	"reservas/services/notification"
	"reservas/services/scheduling"
)

// CreateRequest carries the fields a user submits to book a space.
type CreateRequest struct {
	UserID        string `json:"user_id"`
	SpaceID       string `json:"space_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Justification string `json:"justification"`
}

// UpdateRequest carries the editable fields of a pending reservation.
type UpdateRequest struct {
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Justification string `json:"justification"`
}

// ReservationService owns the reservation lifecycle: request, review, edit,
// cancellation and reminders. Every write re-validates against the scheduling
// engine before touching storage.
type ReservationService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Reservation, error)
	Update(ctx context.Context, reservationID, userID string, req UpdateRequest) (*models.Reservation, error)
	Approve(ctx context.Context, reservationID, adminID string) error
	Reject(ctx context.Context, reservationID, adminID, reason string) error
	CancelByUser(ctx context.Context, reservationID, userID, reason string) error
	DeleteByAdmin(ctx context.Context, reservationID, adminID, reason string) error
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	GetByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	GetPending(ctx context.Context) ([]models.Reservation, error)
	GetAll(ctx context.Context) ([]models.Reservation, error)
	GetBySpaceDate(ctx context.Context, spaceID, date string) ([]models.Reservation, error)
	SendReminders(ctx context.Context, date string) (int, error)
}

type DefaultReservationService struct {
	Repo      reservationRepo.ReservationRepository
	Spaces    spaceRepo.SpaceRepository
	Users     userRepo.UserRepository
	Deletions deletionRepo.DeletionRepository
	Engine    *scheduling.Engine
	Notifier  notification.NotificationService
	Mailer    email.Sender
	Logger    *zap.Logger
}

func (s *DefaultReservationService) Create(ctx context.Context, req CreateRequest) (*models.Reservation, error) {
	if req.UserID == "" || req.SpaceID == "" {
		return nil, fmt.Errorf("%w: user and space are required", ErrInvalidInput)
	}
	interval, err := s.validateWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	space, err := s.Spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("looking up space: %w", err)
	}
	if space == nil {
		return nil, fmt.Errorf("%w: unknown space %q", ErrInvalidInput, req.SpaceID)
	}

	// Class blocks are reported with their times so the user can pick around
	// them; reservation conflicts stay opaque.
	if err := s.checkSlot(ctx, req.SpaceID, req.Date, interval, ""); err != nil {
		return nil, err
	}

	r := &models.Reservation{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		SpaceID:       req.SpaceID,
		Date:          req.Date,
		StartTime:     interval.Start,
		EndTime:       interval.End,
		Justification: req.Justification,
		Status:        models.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w: el horario acaba de ser tomado", ErrConflict)
		}
		return nil, fmt.Errorf("storing reservation: %w", err)
	}

	s.Notifier.Notify(ctx, r.UserID, "Reserva enviada",
		fmt.Sprintf("Tu reserva de %s el %s (%s-%s) quedó pendiente de aprobación.",
			space.Name, r.Date, r.StartTime, r.EndTime),
		models.NotifInfo, "/reservas/"+r.ID)
	s.sendConfirmation(ctx, r, space.Name)
	return r, nil
}

func (s *DefaultReservationService) Update(ctx context.Context, reservationID, userID string, req UpdateRequest) (*models.Reservation, error) {
	existing, err := s.mustGet(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	if existing.Status != models.StatusPending {
		return nil, ErrNotPending
	}

	interval, err := s.validateWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlot(ctx, existing.SpaceID, req.Date, interval, existing.ID); err != nil {
		return nil, err
	}

	existing.Date = req.Date
	existing.StartTime = interval.Start
	existing.EndTime = interval.End
	existing.Justification = req.Justification
	if err := s.Repo.Update(ctx, existing); err != nil {
		if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w: el horario acaba de ser tomado", ErrConflict)
		}
		return nil, fmt.Errorf("updating reservation: %w", err)
	}
	return existing, nil
}

func (s *DefaultReservationService) Approve(ctx context.Context, reservationID, adminID string) error {
	r, err := s.mustGet(ctx, reservationID)
	if err != nil {
		return err
	}
	if r.Status != models.StatusPending {
		return ErrNotPending
	}

	// The slot may have been taken by a class-schedule change or another
	// approval since the request came in.
	interval, ivErr := r.Interval()
	if ivErr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, ivErr)
	}
	if err := s.checkSlot(ctx, r.SpaceID, r.Date, interval, r.ID); err != nil {
		return err
	}

	if err := s.Repo.UpdateStatus(ctx, reservationID, models.StatusApproved, adminID, ""); err != nil {
		return fmt.Errorf("approving reservation: %w", err)
	}
	s.Notifier.Notify(ctx, r.UserID, "Reserva aprobada",
		fmt.Sprintf("Tu reserva del %s (%s-%s) fue aprobada.", r.Date, r.StartTime, r.EndTime),
		models.NotifSuccess, "/reservas/"+r.ID)
	s.Logger.Info("reservation approved",
		zap.String("reservationID", reservationID), zap.String("adminID", adminID))
	return nil
}

func (s *DefaultReservationService) Reject(ctx context.Context, reservationID, adminID, reason string) error {
	if len([]rune(reason)) < 10 {
		return ErrReasonTooShort
	}
	r, err := s.mustGet(ctx, reservationID)
	if err != nil {
		return err
	}
	if r.Status != models.StatusPending {
		return ErrNotPending
	}
	if err := s.Repo.UpdateStatus(ctx, reservationID, models.StatusRejected, adminID, reason); err != nil {
		return fmt.Errorf("rejecting reservation: %w", err)
	}
	s.Notifier.Notify(ctx, r.UserID, "Reserva rechazada",
		fmt.Sprintf("Tu reserva del %s (%s-%s) fue rechazada: %s", r.Date, r.StartTime, r.EndTime, reason),
		models.NotifWarning, "/reservas/"+r.ID)
	s.Logger.Info("reservation rejected",
		zap.String("reservationID", reservationID), zap.String("adminID", adminID))
	return nil
}

func (s *DefaultReservationService) CancelByUser(ctx context.Context, reservationID, userID, reason string) error {
	r, err := s.mustGet(ctx, reservationID)
	if err != nil {
		return err
	}
	if r.UserID != userID {
		return ErrForbidden
	}
	if r.Status != models.StatusPending {
		return ErrNotPending
	}
	if err := s.Deletions.LogDeletion(ctx, *r, userID, "Cancelada por el usuario: "+reason); err != nil {
		s.Logger.Warn("deletion audit write failed", zap.String("reservationID", reservationID), zap.Error(err))
	}
	if err := s.Repo.Delete(ctx, reservationID); err != nil {
		return fmt.Errorf("cancelling reservation: %w", err)
	}
	s.Notifier.Notify(ctx, r.UserID, "Reserva cancelada",
		fmt.Sprintf("Cancelaste tu reserva del %s (%s-%s). Motivo: %s", r.Date, r.StartTime, r.EndTime, reason),
		models.NotifInfo, "/reservas")
	return nil
}

func (s *DefaultReservationService) DeleteByAdmin(ctx context.Context, reservationID, adminID, reason string) error {
	r, err := s.mustGet(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := s.Deletions.LogDeletion(ctx, *r, adminID, reason); err != nil {
		s.Logger.Warn("deletion audit write failed", zap.String("reservationID", reservationID), zap.Error(err))
	}
	if err := s.Repo.Delete(ctx, reservationID); err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	s.Notifier.Notify(ctx, r.UserID, "Reserva eliminada",
		fmt.Sprintf("Tu reserva del %s (%s-%s) fue eliminada por administración.", r.Date, r.StartTime, r.EndTime),
		models.NotifWarning, "")
	return nil
}

func (s *DefaultReservationService) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return s.mustGet(ctx, reservationID)
}

func (s *DefaultReservationService) GetByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.Repo.GetByUser(ctx, userID)
}

func (s *DefaultReservationService) GetPending(ctx context.Context) ([]models.Reservation, error) {
	return s.Repo.GetPending(ctx)
}

func (s *DefaultReservationService) GetAll(ctx context.Context) ([]models.Reservation, error) {
	return s.Repo.GetAll(ctx)
}

// GetBySpaceDate lists every reservation for a space on a date, regardless of
// status. Review screens use it to show a day at a glance.
func (s *DefaultReservationService) GetBySpaceDate(ctx context.Context, spaceID, date string) ([]models.Reservation, error) {
	return s.Repo.ListBySpaceAndDate(ctx, spaceID, date)
}

// SendReminders mails every approved reservation on the date that has not
// been reminded yet, marking each as sent. Returns the number delivered.
func (s *DefaultReservationService) SendReminders(ctx context.Context, date string) (int, error) {
	due, err := s.Repo.GetApprovedByDate(ctx, date, true)
	if err != nil {
		return 0, fmt.Errorf("listing reservations due a reminder: %w", err)
	}
	sent := 0
	for _, r := range due {
		user, err := s.Users.GetByID(ctx, r.UserID)
		if err != nil || user == nil || user.Email == "" {
			s.Logger.Warn("skipping reminder, no recipient",
				zap.String("reservationID", r.ID), zap.String("userID", r.UserID), zap.Error(err))
			continue
		}
		body := fmt.Sprintf("Recordatorio: tienes una reserva el %s de %s a %s.", r.Date, r.StartTime, r.EndTime)
		if err := s.Mailer.Send(ctx, user.Email, "Recordatorio de reserva", body); err != nil {
			s.Logger.Warn("reminder email failed", zap.String("reservationID", r.ID), zap.Error(err))
			continue
		}
		if err := s.Repo.MarkReminderSent(ctx, r.ID); err != nil {
			s.Logger.Warn("failed to mark reminder sent", zap.String("reservationID", r.ID), zap.Error(err))
		}
		sent++
	}
	return sent, nil
}

func (s *DefaultReservationService) mustGet(ctx context.Context, reservationID string) (*models.Reservation, error) {
	r, err := s.Repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("looking up reservation: %w", err)
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// validateWindow checks the date and time window of a booking. Dates before
// today are rejected; today itself is allowed.
func (s *DefaultReservationService) validateWindow(date, start, end string) (models.TimeInterval, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.TimeInterval{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}
	if date < time.Now().Format("2006-01-02") {
		return models.TimeInterval{}, ErrPastDate
	}
	interval, err := models.NewTimeInterval(start, end)
	if err != nil {
		return models.TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return interval, nil
}

// checkSlot validates a candidate window against classes first (so the user
// gets the class times back), then against the full busy set fail-closed.
func (s *DefaultReservationService) checkSlot(ctx context.Context, spaceID, date string, interval models.TimeInterval, excludeID string) error {
	class, err := s.Engine.FindClassConflict(ctx, spaceID, date, interval.Start, interval.End)
	if err != nil {
		return fmt.Errorf("%w: no se pudo verificar disponibilidad", ErrConflict)
	}
	if class != nil {
		return fmt.Errorf("%w: el aula está ocupada por clases de %s a %s", ErrConflict, class.Start, class.End)
	}
	if s.Engine.CheckConflict(ctx, spaceID, date, interval.Start, interval.End, excludeID) {
		return fmt.Errorf("%w: el horario se cruza con otra reserva", ErrConflict)
	}
	return nil
}

func (s *DefaultReservationService) sendConfirmation(ctx context.Context, r *models.Reservation, spaceName string) {
	user, err := s.Users.GetByID(ctx, r.UserID)
	if err != nil || user == nil || user.Email == "" {
		s.Logger.Warn("skipping confirmation email, no recipient",
			zap.String("reservationID", r.ID), zap.String("userID", r.UserID), zap.Error(err))
		return
	}
	body := fmt.Sprintf("Recibimos tu solicitud de reserva de %s el %s de %s a %s. Te avisaremos cuando sea revisada.",
		spaceName, r.Date, r.StartTime, r.EndTime)
	if err := s.Mailer.Send(ctx, user.Email, "Solicitud de reserva recibida", body); err != nil {
		s.Logger.Warn("confirmation email failed", zap.String("reservationID", r.ID), zap.Error(err))
		return
	}
	if err := s.Repo.MarkConfirmationSent(ctx, r.ID); err != nil {
		s.Logger.Warn("failed to mark confirmation sent", zap.String("reservationID", r.ID), zap.Error(err))
	}
}
