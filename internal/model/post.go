package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// PageSize is the fixed number of posts returned per feed page.
const PageSize = 2

// ImageURLUnchanged is the literal value clients send in an update when the
// stored image must be kept.
const ImageURLUnchanged = "undefined"

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, error)
	Count(ctx context.Context) (int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a stored post.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	ImageURL  string
	CreatorID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostInput contains the mutable post fields accepted from clients.
type PostInput struct {
	Title    string
	Content  string
	ImageURL string
}

// ImageUpload describes an image submitted for storage.
type ImageUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	// OldPath, when set, is cleared before the new image is stored.
	OldPath string
}
