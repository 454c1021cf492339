// Package cache holds post cache implementations.
package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// Nop is a PostCache that never stores anything.
type Nop struct{}

var _ model.PostCache = Nop{}

func (Nop) Get(context.Context, uuid.UUID) (model.Post, bool, error) {
	return model.Post{}, false, nil
}

func (Nop) Set(context.Context, model.Post) error {
	return nil
}

func (Nop) Delete(context.Context, uuid.UUID) error {
	return nil
}
