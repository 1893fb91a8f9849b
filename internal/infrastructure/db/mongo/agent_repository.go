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

const collectionAgents = "agents"

type AgentRepository struct {
	col *mongo.Collection
}

func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{col: db.Collection(collectionAgents)}
}

func (r *AgentRepository) Create(ctx context.Context, a *domain.Agent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) FindByCode(ctx context.Context, code string) (*domain.Agent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Agent
	if err := r.col.FindOne(ctx, bson.M{"agent_code": code}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AgentRepository) List(ctx context.Context) ([]*domain.Agent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "agent_code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	agents := []*domain.Agent{}
	if err := cur.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// Update applies the non-nil fields of u and returns the stored agent.
func (r *AgentRepository) Update(ctx context.Context, code string, u ports.AgentUpdate) (*domain.Agent, error) {
	set := setter{}
	set.str("agent_name", u.Name)
	set.str("working_area", u.WorkingArea)
	set.float("commission", u.Commission)
	set.str("phone_no", u.PhoneNo)
	set.str("country", u.Country)
	if len(set) == 0 {
		return r.FindByCode(ctx, code)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Agent
	err := r.col.FindOneAndUpdate(ctx, bson.M{"agent_code": code}, set.update(),
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AgentRepository) Delete(ctx context.Context, code string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"agent_code": code})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique agent code index.
func (r *AgentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "agent_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
