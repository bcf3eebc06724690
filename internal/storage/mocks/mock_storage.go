package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cookbook/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, name string, r io.Reader) (storage.FileInfo, error) {
	args := m.Called(ctx, name, r)
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context) ([]storage.FileInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.FileInfo), args.Error(1)
}
