package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"cookbook/internal/model"
	"cookbook/internal/storage"
)

var (
	ErrReaderNil        = errors.New("reader is nil")
	ErrFilenameRequired = errors.New("filename is required")
)

// FileService defines the upload and listing use cases.
type FileService interface {
	// Upload persists the stream under a millisecond-timestamped name derived
	// from the original filename's base name.
	Upload(ctx context.Context, r io.Reader, originalFilename string) (*model.StoredFile, error)

	// List enumerates stored files as name/url pairs.
	List(ctx context.Context) ([]model.FileEntry, error)
}

// fileService is a concrete implementation of FileService.
type fileService struct {
	store   storage.Storage
	baseURL string
	now     func() time.Time
}

// NewFileService constructs a new FileService. baseURL is the public origin
// used to build download URLs (uploads are served under /uploads).
func NewFileService(store storage.Storage, baseURL string) FileService {
	return &fileService{store: store, baseURL: baseURL, now: time.Now}
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename string) (*model.StoredFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	// Base-naming strips any directory components a client may smuggle in
	base := filepath.Base(originalFilename)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return nil, ErrFilenameRequired
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), base)

	info, err := s.store.Save(ctx, name, r)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	return &model.StoredFile{
		Filename:   info.Name,
		Original:   base,
		Size:       info.Size,
		URL:        s.baseURL + "/uploads/" + info.Name,
		UploadedAt: info.ModTime,
	}, nil
}

func (s *fileService) List(ctx context.Context) ([]model.FileEntry, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.FileEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, model.FileEntry{
			Name: f.Name,
			URL:  s.baseURL + "/uploads/" + f.Name,
		})
	}
	return entries, nil
}
