package deletionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"reservas/database"
	"reservas/models"
)

// DeletionRepository records an audit trail of removed reservations.
type DeletionRepository interface {
	LogDeletion(ctx context.Context, r models.Reservation, deletedBy, reason string) error
}

// MongoDeletionRepo implements DeletionRepository using MongoDB.
type MongoDeletionRepo struct {
	coll *mongo.Collection
}

// NewMongoDeletionRepo constructs a new instance of MongoDeletionRepo.
func NewMongoDeletionRepo() DeletionRepository {
	return &MongoDeletionRepo{coll: database.DB().Collection("reservation_deletions")}
}

func (repo *MongoDeletionRepo) LogDeletion(ctx context.Context, r models.Reservation, deletedBy, reason string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry := models.ReservationDeletion{
		ID:          uuid.NewString(),
		Reservation: r,
		DeletedBy:   deletedBy,
		Reason:      reason,
		DeletedAt:   time.Now(),
	}
	if _, err := repo.coll.InsertOne(ctxWithTimeout, entry); err != nil {
		return fmt.Errorf("error logging reservation deletion: %w", err)
	}
	return nil
}
