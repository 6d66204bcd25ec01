package storage

import (
	"context"
	"io"
)

// ImageStore uploads an image and returns its public URL. Callers keep only
// the URL; there is no read-back path because images are served straight from
// the backing store.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader) (url string, err error)
}
