package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByNumber(ctx context.Context, num int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, bson.M{"ord_num": num}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns one page of orders sorted by date, newest first, and the
// total number of orders.
func (r *OrderRepository) List(ctx context.Context, p ports.Page) ([]*domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "ord_date", Value: -1}, {Key: "ord_num", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	orders := []*domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) Update(ctx context.Context, num int64, u ports.OrderUpdate) (*domain.Order, error) {
	set := setter{}
	set.float("ord_amount", u.Amount)
	set.float("advance_amount", u.AdvanceAmount)
	set.str("cust_code", u.CustomerCode)
	set.str("agent_code", u.AgentCode)
	set.str("ord_description", u.Description)
	if len(set) == 0 {
		return r.FindByNumber(ctx, num)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	err := r.col.FindOneAndUpdate(ctx, bson.M{"ord_num": num}, set.update(),
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, num int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"ord_num": num})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *OrderRepository) TotalByCustomer(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return r.totals(ctx, mongo.Pipeline{groupAmountBy("$cust_code")}, limit)
}

func (r *OrderRepository) TotalByAgent(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return r.totals(ctx, mongo.Pipeline{groupAmountBy("$agent_code")}, limit)
}

// TotalByCountry joins each order to its customer and groups by the
// customer's country.
func (r *OrderRepository) TotalByCountry(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return r.totals(ctx, mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionCustomers},
			{Key: "localField", Value: "cust_code"},
			{Key: "foreignField", Value: "cust_code"},
			{Key: "as", Value: "customer"},
		}}},
		{{Key: "$unwind", Value: "$customer"}},
		groupAmountBy("$customer.cust_country"),
	}, limit)
}

func (r *OrderRepository) totals(ctx context.Context, stages mongo.Pipeline, limit int) ([]domain.AmountTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(stages,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	out := []domain.AmountTotal{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func groupAmountBy(field string) bson.D {
	return bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: field},
		{Key: "total", Value: bson.D{{Key: "$sum", Value: "$ord_amount"}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
}

// EnsureIndexes creates the unique order number index and the grouping indexes.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ord_num", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ord_date", Value: -1}}},
		{Keys: bson.D{{Key: "cust_code", Value: 1}}},
		{Keys: bson.D{{Key: "agent_code", Value: 1}}},
	})
	return err
}
