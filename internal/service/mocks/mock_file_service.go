package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cookbook/internal/model"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, originalFilename string) (*model.StoredFile, error) {
	args := m.Called(ctx, r, originalFilename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredFile), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context) ([]model.FileEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileEntry), args.Error(1)
}
