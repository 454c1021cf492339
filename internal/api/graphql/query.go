package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
)

type loginArgs struct {
	Email    string
	Password string
}

// Login verifies credentials and issues an access token.
func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authDataResolver, error) {
	data, err := r.userService.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &authDataResolver{data: data}, nil
}

type postsArgs struct {
	Page *int32
}

// Posts returns one page of the feed.
func (r *Resolver) Posts(ctx context.Context, args postsArgs) (*postDataResolver, error) {
	var page *int
	if args.Page != nil {
		p := int(*args.Page)
		page = &p
	}

	result, err := r.postService.ListPosts(ctx, r.auth(ctx), page)
	if err != nil {
		return nil, err
	}
	return &postDataResolver{root: r, page: result}, nil
}

type postArgs struct {
	ID graphql.ID
}

// Post returns a single post by id.
func (r *Resolver) Post(ctx context.Context, args postArgs) (*postResolver, error) {
	view, err := r.postService.GetPost(ctx, r.auth(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, view: view}, nil
}

// User returns the authenticated caller.
func (r *Resolver) User(ctx context.Context) (*userResolver, error) {
	view, err := r.userService.CurrentUser(ctx, r.auth(ctx))
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, view: view}, nil
}
