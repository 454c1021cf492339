package context

import (
	"context"

	"github.com/dtroode/gophfeed-server/internal/model"
)

type authKey struct{}

// Manager stores the request AuthContext in a context.Context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAuthToContext returns a copy of ctx carrying auth.
func (m *Manager) SetAuthToContext(ctx context.Context, auth model.AuthContext) context.Context {
	return context.WithValue(ctx, authKey{}, auth)
}

// GetAuthFromContext returns the AuthContext attached to ctx. A context
// without one yields an unauthenticated caller.
func (m *Manager) GetAuthFromContext(ctx context.Context) model.AuthContext {
	auth, ok := ctx.Value(authKey{}).(model.AuthContext)
	if !ok {
		return model.Anonymous()
	}
	return auth
}
