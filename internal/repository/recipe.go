package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// RecipeRepository defines data access for recipe documents.
// No business logic here — strictly persistence operations.
type RecipeRepository interface {
	// Insert stores a recipe document verbatim.
	Insert(ctx context.Context, doc bson.M) error

	// FindAll returns every recipe document with no filter or pagination,
	// in the store's natural iteration order.
	FindAll(ctx context.Context) ([]bson.M, error)
}
