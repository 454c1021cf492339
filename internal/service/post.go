package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/apperr"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/validation"
)

// Post implements feed operations with ownership checks.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	images    model.ImageStore
	cache     model.PostCache
	tx        model.Transactor
	logger    *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	userStore model.UserStore,
	images model.ImageStore,
	cache model.PostCache,
	tx model.Transactor,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		images:    images,
		cache:     cache,
		tx:        tx,
		logger:    logger,
	}
}

// CreatePost stores a post and appends it to the author's collection in one transaction.
func (s *Post) CreatePost(ctx context.Context, auth model.AuthContext, input model.PostInput) (model.PostView, error) {
	if !auth.IsAuthenticated {
		return model.PostView{}, apperr.NewNotAuthenticated()
	}

	if violations := validation.ValidatePost(input.Title, input.Content); len(violations) > 0 {
		return model.PostView{}, apperr.NewInvalidInput(violations)
	}

	user, err := s.userStore.GetByID(ctx, auth.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.PostView{}, apperr.NewInvalidUser()
	}
	if err != nil {
		return model.PostView{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	now := time.Now().UTC()
	post := model.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		CreatorID: user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.postStore.Create(ctx, post)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		if err := s.userStore.AppendPost(ctx, user.ID, created.ID); err != nil {
			return fmt.Errorf("failed to append post to owner: %w", err)
		}
		post = created
		return nil
	})
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", user.ID,
			"error", err.Error())
		return model.PostView{}, err
	}

	user.PostIDs = append(user.PostIDs, post.ID)

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"user_id", user.ID)

	return model.NewPostView(post, user), nil
}

// ListPosts returns one feed page, newest first. A nil or non-positive page is the first page.
func (s *Post) ListPosts(ctx context.Context, auth model.AuthContext, page *int) (model.PostPage, error) {
	if !auth.IsAuthenticated {
		return model.PostPage{}, apperr.NewNotAuthenticated()
	}

	offset, limit := Offset(page)

	total, err := s.postStore.Count(ctx)
	if err != nil {
		return model.PostPage{}, fmt.Errorf("failed to count posts: %w", err)
	}

	posts, err := s.postStore.List(ctx, offset, limit)
	if err != nil {
		return model.PostPage{}, fmt.Errorf("failed to list posts: %w", err)
	}

	views, err := s.project(ctx, posts)
	if err != nil {
		return model.PostPage{}, err
	}

	return model.PostPage{Posts: views, TotalPosts: total}, nil
}

// Offset converts a page number into the skip count and page size.
func Offset(page *int) (offset, limit int) {
	p := 1
	if page != nil && *page > 0 {
		p = *page
	}
	return (p - 1) * model.PageSize, model.PageSize
}

// GetPost returns a single post.
func (s *Post) GetPost(ctx context.Context, auth model.AuthContext, id string) (model.PostView, error) {
	if !auth.IsAuthenticated {
		return model.PostView{}, apperr.NewNotAuthenticated()
	}

	post, err := s.findPost(ctx, id)
	if err != nil {
		return model.PostView{}, err
	}

	creator, err := s.creatorOf(ctx, post)
	if err != nil {
		return model.PostView{}, err
	}

	return model.NewPostView(post, creator), nil
}

// UpdatePost replaces title and content of a post owned by the caller. The image
// is kept when the input carries model.ImageURLUnchanged.
func (s *Post) UpdatePost(ctx context.Context, auth model.AuthContext, id string, input model.PostInput) (model.PostView, error) {
	post, err := s.ownedPost(ctx, auth, id)
	if err != nil {
		return model.PostView{}, err
	}

	if violations := validation.ValidatePost(input.Title, input.Content); len(violations) > 0 {
		return model.PostView{}, apperr.NewInvalidInput(violations)
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.ImageURL != model.ImageURLUnchanged {
		post.ImageURL = input.ImageURL
	}
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.postStore.Update(ctx, post)
	if errors.Is(err, model.ErrNotFound) {
		return model.PostView{}, apperr.NewPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to update post",
			"post_id", post.ID,
			"error", err.Error())
		return model.PostView{}, fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidate(ctx, updated.ID)

	creator, err := s.creatorOf(ctx, updated)
	if err != nil {
		return model.PostView{}, err
	}

	return model.NewPostView(updated, creator), nil
}

// DeletePost removes a post owned by the caller together with its owner
// reference, then clears its image.
func (s *Post) DeletePost(ctx context.Context, auth model.AuthContext, id string) (bool, error) {
	post, err := s.ownedPost(ctx, auth, id)
	if err != nil {
		return false, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.userStore.RemovePost(ctx, post.CreatorID, post.ID); err != nil {
			return fmt.Errorf("failed to remove post from owner: %w", err)
		}
		if err := s.postStore.Delete(ctx, post.ID); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
	if errors.Is(err, model.ErrNotFound) {
		return false, apperr.NewPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to delete post",
			"post_id", post.ID,
			"error", err.Error())
		return false, err
	}

	s.invalidate(ctx, post.ID)

	if post.ImageURL != "" {
		if err := s.images.Delete(ctx, post.ImageURL); err != nil {
			s.logger.Warn("Post service: failed to clear image",
				"post_id", post.ID,
				"path", post.ImageURL,
				"error", err.Error())
		}
	}

	s.logger.Info("Post service: post deleted",
		"post_id", post.ID)

	return true, nil
}

// PostsOf returns the posts of a user in collection order.
func (s *Post) PostsOf(ctx context.Context, auth model.AuthContext, userID string) ([]model.PostView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.NewNotAuthenticated()
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.NewUserNotFound()
	}

	posts, err := s.postStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by owner: %w", err)
	}

	return s.project(ctx, posts)
}

// StoreImage saves an uploaded image and returns its path. A previous image
// named by upload.OldPath is cleared first.
func (s *Post) StoreImage(ctx context.Context, auth model.AuthContext, upload model.ImageUpload) (string, error) {
	if !auth.IsAuthenticated {
		return "", apperr.NewNotAuthenticated()
	}

	if upload.OldPath != "" {
		if err := s.images.Delete(ctx, upload.OldPath); err != nil {
			s.logger.Warn("Post service: failed to clear old image",
				"path", upload.OldPath,
				"error", err.Error())
		}
	}

	path, err := s.images.Save(ctx, upload)
	if err != nil {
		s.logger.Error("Post service: failed to store image",
			"name", upload.Name,
			"error", err.Error())
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return path, nil
}

func (s *Post) ownedPost(ctx context.Context, auth model.AuthContext, id string) (model.Post, error) {
	if !auth.IsAuthenticated {
		return model.Post{}, apperr.NewNotAuthenticated()
	}

	post, err := s.findPost(ctx, id)
	if err != nil {
		return model.Post{}, err
	}

	if post.CreatorID != auth.UserID {
		s.logger.Info("Post service: ownership check failed",
			"post_id", post.ID,
			"user_id", auth.UserID)
		return model.Post{}, apperr.NewNotAuthorized()
	}

	return post, nil
}

func (s *Post) findPost(ctx context.Context, id string) (model.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return model.Post{}, apperr.NewPostNotFound()
	}

	cached, ok, err := s.cache.Get(ctx, postID)
	if err != nil {
		s.logger.Warn("Post service: cache read failed",
			"post_id", postID,
			"error", err.Error())
	}
	if ok {
		return cached, nil
	}

	post, err := s.postStore.GetByID(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apperr.NewPostNotFound()
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	if err := s.cache.Set(ctx, post); err != nil {
		s.logger.Warn("Post service: cache write failed",
			"post_id", postID,
			"error", err.Error())
	}

	return post, nil
}

func (s *Post) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("Post service: cache invalidation failed",
			"post_id", id,
			"error", err.Error())
	}
}

// creatorOf resolves the author of a post. A removed author yields an empty user.
func (s *Post) creatorOf(ctx context.Context, post model.Post) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, post.CreatorID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, nil
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get creator: %w", err)
	}
	return user, nil
}

func (s *Post) project(ctx context.Context, posts []model.Post) ([]model.PostView, error) {
	creators := make(map[uuid.UUID]model.User)
	views := make([]model.PostView, 0, len(posts))
	for _, p := range posts {
		creator, ok := creators[p.CreatorID]
		if !ok {
			var err error
			creator, err = s.creatorOf(ctx, p)
			if err != nil {
				return nil, err
			}
			creators[p.CreatorID] = creator
		}
		views = append(views, model.NewPostView(p, creator))
	}
	return views, nil
}
