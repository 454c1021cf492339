package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/gophfeed-server/internal/model"
)

type userInputData struct {
	Email    string
	Name     string
	Password string
}

type postInputData struct {
	Title    string
	Content  string
	ImageURL string
}

func (in postInputData) toModel() model.PostInput {
	return model.PostInput{Title: in.Title, Content: in.Content, ImageURL: in.ImageURL}
}

type createUserArgs struct {
	UserInput userInputData
}

// CreateUser registers a new account.
func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (*userResolver, error) {
	view, err := r.userService.CreateUser(ctx, model.CreateUserInput{
		Email:    args.UserInput.Email,
		Name:     args.UserInput.Name,
		Password: args.UserInput.Password,
	})
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, view: view}, nil
}

type createPostArgs struct {
	PostInput postInputData
}

// CreatePost publishes a post owned by the caller.
func (r *Resolver) CreatePost(ctx context.Context, args createPostArgs) (*postResolver, error) {
	view, err := r.postService.CreatePost(ctx, r.auth(ctx), args.PostInput.toModel())
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, view: view}, nil
}

type updatePostArgs struct {
	ID        graphql.ID
	PostInput postInputData
}

// UpdatePost edits a post owned by the caller.
func (r *Resolver) UpdatePost(ctx context.Context, args updatePostArgs) (*postResolver, error) {
	view, err := r.postService.UpdatePost(ctx, r.auth(ctx), string(args.ID), args.PostInput.toModel())
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, view: view}, nil
}

type deletePostArgs struct {
	ID graphql.ID
}

// DeletePost removes a post owned by the caller.
func (r *Resolver) DeletePost(ctx context.Context, args deletePostArgs) (bool, error) {
	return r.postService.DeletePost(ctx, r.auth(ctx), string(args.ID))
}

type updateStatusArgs struct {
	Status string
}

// UpdateStatus overwrites the caller's status line.
func (r *Resolver) UpdateStatus(ctx context.Context, args updateStatusArgs) (*userResolver, error) {
	view, err := r.userService.UpdateStatus(ctx, r.auth(ctx), args.Status)
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, view: view}, nil
}
