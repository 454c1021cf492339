package model

import (
	"context"

	"github.com/google/uuid"
)

// PostCache is a read-through cache for post records. Get reports a miss with
// ok == false and a nil error.
type PostCache interface {
	Get(ctx context.Context, id uuid.UUID) (post Post, ok bool, err error)
	Set(ctx context.Context, post Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
