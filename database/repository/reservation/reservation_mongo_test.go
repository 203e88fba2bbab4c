package reservationRepo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetByIDAbsentReturnsNil(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock).CollectionName("reservations"))

	mt.Run("absent id yields nil result, nil error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "reservas.reservations", mtest.FirstBatch))
		repo := &MongoReservationRepo{coll: mt.Coll}

		r, err := repo.GetByID(context.Background(), "no-such-id")
		if err != nil {
			mt.Fatalf("GetByID: %v", err)
		}
		if r != nil {
			mt.Errorf("r = %+v, want nil for an absent id", r)
		}
	})

	mt.Run("stored reservation is decoded", func(mt *mtest.T) {
		doc := bson.D{
			{Key: "id", Value: "r1"},
			{Key: "user_id", Value: "u1"},
			{Key: "space_id", Value: "sp1"},
			{Key: "date", Value: "2026-02-10"},
			{Key: "start_time", Value: "09:00"},
			{Key: "end_time", Value: "10:00"},
			{Key: "status", Value: "pending"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "reservas.reservations", mtest.FirstBatch, doc))
		repo := &MongoReservationRepo{coll: mt.Coll}

		r, err := repo.GetByID(context.Background(), "r1")
		if err != nil {
			mt.Fatalf("GetByID: %v", err)
		}
		if r == nil || r.ID != "r1" || r.SpaceID != "sp1" {
			mt.Errorf("r = %+v, want the stored reservation", r)
		}
	})
}
