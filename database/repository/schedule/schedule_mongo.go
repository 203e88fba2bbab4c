package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	return &MongoScheduleRepo{coll: database.DB().Collection("class_schedules")}
}

func (repo *MongoScheduleRepo) List(ctx context.Context, spaceID string, weekday int) ([]models.ClassSchedule, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if spaceID != "" {
		filter["space_id"] = spaceID
	}
	if weekday >= 0 {
		filter["weekday"] = weekday
	}
	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching class schedules: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var schedules []models.ClassSchedule
	if err := cursor.All(ctxWithTimeout, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding class schedules: %w", err)
	}
	return schedules, nil
}

func (repo *MongoScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*models.ClassSchedule, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.ClassSchedule
	if err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": scheduleID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching class schedule %s: %w", scheduleID, err)
	}
	return &s, nil
}

func (repo *MongoScheduleRepo) Create(ctx context.Context, s *models.ClassSchedule) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, s); err != nil {
		return fmt.Errorf("error creating class schedule: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) Update(ctx context.Context, s *models.ClassSchedule) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("error updating class schedule %s: %w", s.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("class schedule %s not found", s.ID)
	}
	return nil
}

func (repo *MongoScheduleRepo) Delete(ctx context.Context, scheduleID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": scheduleID})
	if err != nil {
		return fmt.Errorf("error deleting class schedule %s: %w", scheduleID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("class schedule %s not found", scheduleID)
	}
	return nil
}
