package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// diskStorage implements Storage on a local directory.
// It is safe for concurrent use; the OS serializes writes per file.
type diskStorage struct {
	dir string
}

// NewDisk creates the upload directory if missing and returns a Storage
// backed by it.
func NewDisk(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

// Save writes the stream to <dir>/<name>. Names carrying path separators are
// rejected so a crafted filename cannot escape the directory.
func (d *diskStorage) Save(ctx context.Context, name string, r io.Reader) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, err
	}
	if name == "" || name != filepath.Base(name) {
		return FileInfo{}, fmt.Errorf("invalid file name %q", name)
	}

	path := filepath.Join(d.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Leave no partial file behind
		_ = os.Remove(path)
		return FileInfo{}, fmt.Errorf("write file: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat file: %w", err)
	}

	return FileInfo{Name: name, Size: size, ModTime: st.ModTime()}, nil
}

// List returns the regular files in the directory, in lexical order.
func (d *diskStorage) List(ctx context.Context) ([]FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}
