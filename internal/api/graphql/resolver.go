// Package graphql exposes the user and post services over a GraphQL endpoint.
package graphql

import (
	"context"
	_ "embed"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Schema is the GraphQL schema served at /graphql.
//
//go:embed schema.graphql
var Schema string

// UserService defines account operations used by the resolvers.
type UserService interface {
	CreateUser(ctx context.Context, input model.CreateUserInput) (model.UserView, error)
	Login(ctx context.Context, email, password string) (model.AuthData, error)
	CurrentUser(ctx context.Context, auth model.AuthContext) (model.UserView, error)
	UpdateStatus(ctx context.Context, auth model.AuthContext, status string) (model.UserView, error)
}

// PostService defines post operations used by the resolvers.
type PostService interface {
	CreatePost(ctx context.Context, auth model.AuthContext, input model.PostInput) (model.PostView, error)
	ListPosts(ctx context.Context, auth model.AuthContext, page *int) (model.PostPage, error)
	GetPost(ctx context.Context, auth model.AuthContext, id string) (model.PostView, error)
	UpdatePost(ctx context.Context, auth model.AuthContext, id string, input model.PostInput) (model.PostView, error)
	DeletePost(ctx context.Context, auth model.AuthContext, id string) (bool, error)
	PostsOf(ctx context.Context, auth model.AuthContext, userID string) ([]model.PostView, error)
}

// Resolver is the root resolver for both Query and Mutation.
// Every field reads the AuthContext once and hands it to the service.
type Resolver struct {
	userService    UserService
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewResolver creates a new root resolver.
func NewResolver(
	userService UserService,
	postService PostService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Resolver {
	return &Resolver{
		userService:    userService,
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (r *Resolver) auth(ctx context.Context) model.AuthContext {
	return r.contextManager.GetAuthFromContext(ctx)
}
