package model

import (
	"context"
	"io"
)

// ImageStore keeps post images. Paths returned by Save are the values stored
// in Post.ImageURL and accepted by Open and Delete.
type ImageStore interface {
	Save(ctx context.Context, upload ImageUpload) (path string, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
