package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// favoriteDoc holds one user's favorite set.
type favoriteDoc struct {
	UserID     string   `bson:"_id"`
	ServiceIDs []string `bson:"service_ids"`
}

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(collectionFavorites)}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, serviceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"service_ids": serviceID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return res.ModifiedCount > 0 || res.UpsertedCount > 0, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, serviceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"service_ids": serviceID}},
	)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *FavoriteRepository) List(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc favoriteDoc
	err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	if doc.ServiceIDs == nil {
		return []string{}, nil
	}
	return doc.ServiceIDs, nil
}
