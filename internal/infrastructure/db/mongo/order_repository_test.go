package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestOrderRepository_Totals(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("by country", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "sales.orders", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "India"}, {Key: "total", Value: 12000.0}, {Key: "count", Value: int32(4)}},
			bson.D{{Key: "_id", Value: "UK"}, {Key: "total", Value: 3500.0}, {Key: "count", Value: int32(1)}},
		))

		rows, err := NewOrderRepository(mt.DB).TotalByCountry(context.Background(), 10)
		if err != nil {
			mt.Fatalf("TotalByCountry: %v", err)
		}
		if len(rows) != 2 || rows[0].Key != "India" || rows[0].Total != 12000 || rows[0].Count != 4 {
			mt.Fatalf("unexpected rows: %+v", rows)
		}
	})

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "sales.orders", mtest.FirstBatch))

		rows, err := NewOrderRepository(mt.DB).TotalByAgent(context.Background(), 5)
		if err != nil {
			mt.Fatalf("TotalByAgent: %v", err)
		}
		if rows == nil || len(rows) != 0 {
			mt.Fatalf("expected empty non-nil slice, got %#v", rows)
		}
	})
}
