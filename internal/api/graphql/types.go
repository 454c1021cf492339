package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/gophfeed-server/internal/model"
)

type authDataResolver struct {
	data model.AuthData
}

func (a *authDataResolver) Token() string  { return a.data.Token }
func (a *authDataResolver) UserID() string { return a.data.UserID }

// postResolver serves both _id and id from ID.
type postResolver struct {
	root *Resolver
	view model.PostView
}

func (p *postResolver) ID() graphql.ID    { return graphql.ID(p.view.ID) }
func (p *postResolver) Title() string     { return p.view.Title }
func (p *postResolver) Content() string   { return p.view.Content }
func (p *postResolver) ImageURL() string  { return p.view.ImageURL }
func (p *postResolver) CreatedAt() string { return p.view.CreatedAt }
func (p *postResolver) UpdatedAt() string { return p.view.UpdatedAt }

func (p *postResolver) Creator() *userResolver {
	return &userResolver{root: p.root, view: p.view.Creator}
}

type userResolver struct {
	root *Resolver
	view model.UserView
}

func (u *userResolver) ID() graphql.ID { return graphql.ID(u.view.ID) }
func (u *userResolver) Name() string   { return u.view.Name }
func (u *userResolver) Email() string  { return u.view.Email }
func (u *userResolver) Status() string { return u.view.Status }

// Password is never exposed.
func (u *userResolver) Password() *string { return nil }

// Posts lists the user's own posts in collection order. A user without post
// references resolves to an empty list without a lookup, so a fresh signup can
// select posts before it holds a token.
func (u *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	if len(u.view.PostIDs) == 0 {
		return []*postResolver{}, nil
	}

	views, err := u.root.postService.PostsOf(ctx, u.root.auth(ctx), u.view.ID)
	if err != nil {
		return nil, err
	}
	return wrapPosts(u.root, views), nil
}

type postDataResolver struct {
	root *Resolver
	page model.PostPage
}

func (d *postDataResolver) Posts() []*postResolver {
	return wrapPosts(d.root, d.page.Posts)
}

func (d *postDataResolver) TotalPosts() int32 {
	return int32(d.page.TotalPosts)
}

func wrapPosts(root *Resolver, views []model.PostView) []*postResolver {
	out := make([]*postResolver, 0, len(views))
	for _, v := range views {
		out = append(out, &postResolver{root: root, view: v})
	}
	return out
}
