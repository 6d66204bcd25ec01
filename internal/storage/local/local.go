package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes images under basePath and returns URLs rooted at
// baseURL/uploads. Meant for development; production uses Cloudinary.
type Store struct {
	basePath string
	baseURL  string
}

func New(basePath, baseURL string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *Store) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%d_%s", folder, time.Now().UnixMilli(), sanitize(filename))
	path := filepath.Join(s.basePath, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// sanitize strips path separators so a crafted filename cannot escape the
// upload directory.
func sanitize(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	if name == "." || name == "" {
		name = "upload"
	}
	return name
}

// BasePath exposes the directory for the static-file route.
func (s *Store) BasePath() string { return s.basePath }
