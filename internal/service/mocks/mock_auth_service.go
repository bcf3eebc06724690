package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"cookbook/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, doc bson.M) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}
