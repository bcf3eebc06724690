package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cookbook/internal/repository"
)

const recipeCollection = "recipes"

// RecipeMongo is a MongoDB implementation of repository.RecipeRepository.
// Documents are stored without schema validation; callers own their shape.
type RecipeMongo struct {
	coll *mongo.Collection
}

// NewRecipeMongo creates a new RecipeMongo repository.
func NewRecipeMongo(db *mongo.Database) *RecipeMongo {
	return &RecipeMongo{coll: db.Collection(recipeCollection)}
}

var _ repository.RecipeRepository = (*RecipeMongo)(nil)

// Insert stores a recipe document as-is.
func (r *RecipeMongo) Insert(ctx context.Context, doc bson.M) error {
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// FindAll returns every recipe document, unfiltered, in natural order.
func (r *RecipeMongo) FindAll(ctx context.Context) ([]bson.M, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	// cursor.All drains and closes the cursor
	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
