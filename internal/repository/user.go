package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access for user documents.
type UserRepository interface {
	// Insert stores a user document verbatim. A duplicate email surfaces as
	// the driver's duplicate key error (unique index, see database/migration).
	Insert(ctx context.Context, doc bson.M) error

	// FindByEmail returns the single user document matching the email.
	// Returns mongo.ErrNoDocuments when no user matches.
	FindByEmail(ctx context.Context, email string) (bson.M, error)
}
