package model

import (
	"context"

	"github.com/google/uuid"
)

// AuthContext is the per-request authentication result. The zero value is an
// unauthenticated caller.
type AuthContext struct {
	IsAuthenticated bool
	UserID          uuid.UUID
	Email           string
}

// Anonymous returns an unauthenticated context.
func Anonymous() AuthContext {
	return AuthContext{}
}

// Authenticated returns a context for a verified token payload.
func Authenticated(payload TokenPayload) AuthContext {
	return AuthContext{IsAuthenticated: true, UserID: payload.UserID, Email: payload.Email}
}

// ContextManager attaches the AuthContext to request contexts and reads it back.
type ContextManager interface {
	SetAuthToContext(ctx context.Context, auth AuthContext) context.Context
	GetAuthFromContext(ctx context.Context) AuthContext
}
