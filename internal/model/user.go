package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultUserStatus is assigned to every newly created account.
const DefaultUserStatus = "I am new!"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (User, error)
	AppendPost(ctx context.Context, userID, postID uuid.UUID) error
	RemovePost(ctx context.Context, userID, postID uuid.UUID) error
}

// User represents a stored account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Status       string
	// PostIDs is the ordered collection of posts owned by the user.
	PostIDs   []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput contains signup fields.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}
