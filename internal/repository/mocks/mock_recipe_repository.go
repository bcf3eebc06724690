package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Insert(ctx context.Context, doc bson.M) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}
