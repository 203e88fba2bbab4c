package spaceRepo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetByIDAbsentReturnsNil(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock).CollectionName("spaces"))

	mt.Run("absent id yields nil result, nil error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "reservas.spaces", mtest.FirstBatch))
		repo := &MongoSpaceRepo{coll: mt.Coll}

		sp, err := repo.GetByID(context.Background(), "no-such-id")
		if err != nil {
			mt.Fatalf("GetByID: %v", err)
		}
		if sp != nil {
			mt.Errorf("sp = %+v, want nil for an absent id", sp)
		}
	})
}
