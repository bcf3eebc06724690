package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains file persistence for the upload directory. The
// directory doubles as the document root for static serving, so entries are
// plain files addressable by name with no nesting.

// FileInfo contains basic information about a stored file.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Storage persists uploaded files under flat, caller-chosen names.
type Storage interface {
	// Save streams the reader's content into a file with the given name.
	// The name must be a bare filename without path separators.
	Save(ctx context.Context, name string, r io.Reader) (FileInfo, error)
	// List enumerates stored files. Subdirectories are skipped.
	List(ctx context.Context) ([]FileInfo, error)
}
