package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reservas/database"
	"reservas/models"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo
// and ensures the duplicate-submission guard index exists.
func NewMongoReservationRepo() ReservationRepository {
	repo := &MongoReservationRepo{coll: database.DB().Collection("reservations")}
	repo.ensureIndexes()
	return repo
}

// ensureIndexes creates a partial unique index on (space_id, date, start_time)
// for active reservations. This closes the exact-duplicate half of the
// check-then-insert race; true interval-overlap atomicity is still the
// storage layer's obligation, the service-level conflict check is a fast
// pre-validation only.
func (repo *MongoReservationRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "space_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "start_time", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": models.ActiveStatuses},
			}),
	}
	if _, err := repo.coll.Indexes().CreateOne(ctx, model); err != nil {
		fmt.Printf("warning: could not ensure reservation indexes: %v\n", err)
	}
}

func (repo *MongoReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var r models.Reservation
	if err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": reservationID}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching reservation %s: %w", reservationID, err)
	}
	return &r, nil
}

func (repo *MongoReservationRepo) GetByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start_time", Value: 1}})
	return repo.find(ctx, bson.M{"user_id": userID}, opts)
}

func (repo *MongoReservationRepo) GetPending(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return repo.find(ctx, bson.M{"status": models.StatusPending}, opts)
}

func (repo *MongoReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return repo.find(ctx, bson.M{}, opts)
}

func (repo *MongoReservationRepo) ListBySpaceAndDate(ctx context.Context, spaceID, date string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	return repo.find(ctx, bson.M{"space_id": spaceID, "date": date}, opts)
}

func (repo *MongoReservationRepo) ListBusy(ctx context.Context, spaceID, date string) ([]models.Reservation, error) {
	filter := bson.M{
		"space_id": spaceID,
		"date":     date,
		"status":   bson.M{"$in": models.ActiveStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	return repo.find(ctx, filter, opts)
}

func (repo *MongoReservationRepo) GetApprovedByDate(ctx context.Context, date string, onlyWithoutReminder bool) ([]models.Reservation, error) {
	filter := bson.M{"date": date, "status": models.StatusApproved}
	if onlyWithoutReminder {
		filter["reminder_sent"] = false
	}
	return repo.find(ctx, filter, options.Find())
}

func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, reservationID string, status models.ReservationStatus, reviewedBy, rejectionReason string) error {
	set := bson.M{"status": status, "reviewed_by": reviewedBy}
	if rejectionReason != "" {
		set["rejection_reason"] = rejectionReason
	}
	return repo.updateOne(ctx, reservationID, bson.M{"$set": set})
}

func (repo *MongoReservationRepo) Update(ctx context.Context, r *models.Reservation) error {
	return repo.updateOne(ctx, r.ID, bson.M{"$set": r})
}

func (repo *MongoReservationRepo) Delete(ctx context.Context, reservationID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": reservationID})
	if err != nil {
		return fmt.Errorf("error deleting reservation %s: %w", reservationID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("reservation %s not found", reservationID)
	}
	return nil
}

func (repo *MongoReservationRepo) MarkConfirmationSent(ctx context.Context, reservationID string) error {
	return repo.updateOne(ctx, reservationID, bson.M{"$set": bson.M{"confirmation_sent": true}})
}

func (repo *MongoReservationRepo) MarkReminderSent(ctx context.Context, reservationID string) error {
	return repo.updateOne(ctx, reservationID, bson.M{"$set": bson.M{"reminder_sent": true}})
}

func (repo *MongoReservationRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var out []models.Reservation
	if err := cursor.All(ctxWithTimeout, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

func (repo *MongoReservationRepo) updateOne(ctx context.Context, reservationID string, update bson.M) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": reservationID}, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", reservationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", reservationID)
	}
	return nil
}
