package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

type StageRepository struct {
	col *mongo.Collection
}

func NewStageRepository(db *mongo.Database) *StageRepository {
	return &StageRepository{col: db.Collection(collectionStages)}
}

func (r *StageRepository) Create(ctx context.Context, o *domain.StageOffer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert stage offer: %w", err)
	}
	return nil
}

func (r *StageRepository) FindByID(ctx context.Context, id string) (*domain.StageOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.StageOffer
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, notFound(err, domain.ErrStageNotFound)
	}
	return &o, nil
}

func (r *StageRepository) List(ctx context.Context) ([]*domain.StageOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find stage offers: %w", err)
	}
	return decodeAll[domain.StageOffer](ctx, cur)
}

func (r *StageRepository) IncrementApplicants(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"applicants": 1}})
	if err != nil {
		return fmt.Errorf("increment applicants: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStageNotFound
	}
	return nil
}

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.StageApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StageApplication, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ApplicationRepository) List(ctx context.Context) ([]*domain.StageApplication, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*domain.StageApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	return decodeAll[domain.StageApplication](ctx, cur)
}

func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "stage_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}
