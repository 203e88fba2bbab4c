package spaceRepo

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

// MongoSpaceRepo implements SpaceRepository using MongoDB.
type MongoSpaceRepo struct {
	coll *mongo.Collection
}

// NewMongoSpaceRepo constructs a new instance of MongoSpaceRepo.
func NewMongoSpaceRepo() SpaceRepository {
	return &MongoSpaceRepo{coll: database.DB().Collection("spaces")}
}

func (repo *MongoSpaceRepo) GetAll(ctx context.Context) ([]models.Space, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching spaces: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var spaces []models.Space
	if err := cursor.All(ctxWithTimeout, &spaces); err != nil {
		return nil, fmt.Errorf("error decoding spaces: %w", err)
	}
	return spaces, nil
}

func (repo *MongoSpaceRepo) GetByID(ctx context.Context, spaceID string) (*models.Space, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var space models.Space
	if err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": spaceID}).Decode(&space); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching space %s: %w", spaceID, err)
	}
	return &space, nil
}

func (repo *MongoSpaceRepo) GetByType(ctx context.Context, spaceType models.SpaceType) ([]models.Space, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"type": spaceType})
	if err != nil {
		return nil, fmt.Errorf("error fetching spaces by type %s: %w", spaceType, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var spaces []models.Space
	if err := cursor.All(ctxWithTimeout, &spaces); err != nil {
		return nil, fmt.Errorf("error decoding spaces: %w", err)
	}
	return spaces, nil
}

func (repo *MongoSpaceRepo) Create(ctx context.Context, space *models.Space) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, space); err != nil {
		return fmt.Errorf("error creating space: %w", err)
	}
	return nil
}
