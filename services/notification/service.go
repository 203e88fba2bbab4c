package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationRepo "reservas/database/repository/notification"
	"reservas/models"
)

// NotificationService posts and lists in-app notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID, title, message string, kind models.NotificationKind, link string)
	GetForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Logger *zap.Logger
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo, Logger: logger}
}

// Notify records an in-app notification. Delivery is best-effort: a failed
// write never blocks the operation that triggered it.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, message string, kind models.NotificationKind, link string) {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Kind:      kind,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		s.Logger.Warn("notification write failed",
			zap.String("userID", userID), zap.String("title", title), zap.Error(err))
	}
}

func (s *DefaultNotificationService) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.Repo.MarkRead(ctx, notificationID)
}
