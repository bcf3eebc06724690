package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cookbook/internal/repository"
)

// Collection name kept singular to match the existing deployment's data.
const userCollection = "user"

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

// NewUserMongo creates a new UserMongo repository.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(userCollection)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// Insert stores a user document as-is. Uniqueness of the email field is
// enforced by the index created at startup; violations surface as the
// driver's duplicate key error.
func (r *UserMongo) Insert(ctx context.Context, doc bson.M) error {
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// FindByEmail fetches exactly one user document by email.
func (r *UserMongo) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
