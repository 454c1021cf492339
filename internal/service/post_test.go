package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/apperr"
	"github.com/dtroode/gophfeed-server/internal/cache"
	"github.com/dtroode/gophfeed-server/internal/mocks"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/testutil"
)

type txMarker struct{}

func inTx(ctx context.Context) bool {
	return ctx.Value(txMarker{}) != nil
}

type postDeps struct {
	posts  *mocks.PostStore
	users  *mocks.UserStore
	images *mocks.ImageStore
	tx     *mocks.Transactor
}

func newPostService(t *testing.T) (*Post, postDeps) {
	t.Helper()
	deps := postDeps{
		posts:  mocks.NewPostStore(t),
		users:  mocks.NewUserStore(t),
		images: mocks.NewImageStore(t),
		tx:     mocks.NewTransactor(t),
	}
	s := NewPost(deps.posts, deps.users, deps.images, cache.Nop{}, deps.tx, testutil.MakeNoopLogger())
	return s, deps
}

func expectTx(tx *mocks.Transactor) {
	tx.On("WithinTx", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(context.WithValue(ctx, txMarker{}, true))
	})
}

func authAs(id uuid.UUID) model.AuthContext {
	return model.AuthContext{IsAuthenticated: true, UserID: id, Email: "owner@b.co"}
}

func TestPost_RequiresAuthentication(t *testing.T) {
	s, _ := newPostService(t)
	ctx := context.Background()
	anon := model.Anonymous()
	input := model.PostInput{Title: "Hello", Content: "World!"}

	_, err := s.CreatePost(ctx, anon, input)
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.ListPosts(ctx, anon, nil)
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.GetPost(ctx, anon, uuid.NewString())
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.UpdatePost(ctx, anon, uuid.NewString(), input)
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.DeletePost(ctx, anon, uuid.NewString())
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.PostsOf(ctx, anon, uuid.NewString())
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = s.StoreImage(ctx, anon, model.ImageUpload{Name: "a.png"})
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestPost_CreatePost_Success(t *testing.T) {
	s, deps := newPostService(t)
	userID := uuid.New()
	user := model.User{ID: userID, Name: "Ann", Email: "owner@b.co"}

	deps.users.On("GetByID", mock.Anything, userID).Return(user, nil)
	expectTx(deps.tx)
	deps.posts.On("Create", mock.MatchedBy(inTx), mock.MatchedBy(func(p model.Post) bool {
		return p.Title == "Hello" && p.CreatorID == userID && p.ImageURL == "images/x.png"
	})).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })
	deps.users.On("AppendPost", mock.MatchedBy(inTx), userID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	view, err := s.CreatePost(context.Background(), authAs(userID), model.PostInput{Title: "Hello", Content: "World!", ImageURL: "images/x.png"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", view.Title)
	assert.Equal(t, userID.String(), view.Creator.ID)
	assert.Equal(t, "Ann", view.Creator.Name)
	assert.Equal(t, []string{view.ID}, view.Creator.PostIDs)
	assert.Equal(t, view.CreatedAt, view.UpdatedAt)
}

func TestPost_CreatePost_InvalidInput(t *testing.T) {
	s, _ := newPostService(t)

	_, err := s.CreatePost(context.Background(), authAs(uuid.New()), model.PostInput{Title: "Hi", Content: "abc"})
	appErr := requireKind(t, err, apperr.KindInvalidInput)
	assert.Equal(t, []model.Violation{
		{Field: "title", Message: "Title is invalid"},
		{Field: "content", Message: "Content is invalid"},
	}, appErr.Data)
}

func TestPost_CreatePost_VanishedUser(t *testing.T) {
	s, deps := newPostService(t)
	userID := uuid.New()
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	_, err := s.CreatePost(context.Background(), authAs(userID), model.PostInput{Title: "Hello", Content: "World!"})
	appErr := requireKind(t, err, apperr.KindUnauthorized)
	assert.Equal(t, "Invalid user", appErr.Message)
}

func TestPost_CreatePost_AppendFailureFailsCall(t *testing.T) {
	s, deps := newPostService(t)
	userID := uuid.New()
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	expectTx(deps.tx)
	deps.posts.On("Create", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })
	deps.users.On("AppendPost", mock.Anything, userID, mock.Anything).Return(errors.New("boom"))

	_, err := s.CreatePost(context.Background(), authAs(userID), model.PostInput{Title: "Hello", Content: "World!"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestOffset(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name       string
		page       *int
		wantOffset int
	}{
		{name: "nil", page: nil, wantOffset: 0},
		{name: "zero", page: intPtr(0), wantOffset: 0},
		{name: "negative", page: intPtr(-3), wantOffset: 0},
		{name: "first", page: intPtr(1), wantOffset: 0},
		{name: "second", page: intPtr(2), wantOffset: 2},
		{name: "fifth", page: intPtr(5), wantOffset: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Offset(tt.page)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, model.PageSize, limit)
		})
	}
}

func TestPost_ListPosts_SecondPage(t *testing.T) {
	s, deps := newPostService(t)
	userID := uuid.New()
	now := time.Now().UTC()
	third := model.Post{ID: uuid.New(), Title: "third", CreatorID: userID, CreatedAt: now.Add(-3 * time.Minute)}
	fourth := model.Post{ID: uuid.New(), Title: "fourth", CreatorID: userID, CreatedAt: now.Add(-4 * time.Minute)}

	deps.posts.On("Count", mock.Anything).Return(5, nil)
	deps.posts.On("List", mock.Anything, 2, 2).Return([]model.Post{third, fourth}, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Name: "Ann"}, nil).Once()

	page := 2
	res, err := s.ListPosts(context.Background(), authAs(userID), &page)
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalPosts)
	require.Len(t, res.Posts, 2)
	assert.Equal(t, "third", res.Posts[0].Title)
	assert.Equal(t, "fourth", res.Posts[1].Title)
	assert.Equal(t, "Ann", res.Posts[1].Creator.Name)
}

func TestPost_ListPosts_DefaultPage(t *testing.T) {
	for _, page := range []*int{nil, new(int)} {
		s, deps := newPostService(t)
		deps.posts.On("Count", mock.Anything).Return(0, nil)
		deps.posts.On("List", mock.Anything, 0, 2).Return([]model.Post{}, nil)

		res, err := s.ListPosts(context.Background(), authAs(uuid.New()), page)
		require.NoError(t, err)
		assert.Empty(t, res.Posts)
		assert.NotNil(t, res.Posts)
	}
}

func TestPost_GetPost(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	post := model.Post{ID: uuid.New(), Title: "Hello", Content: "World!", ImageURL: "images/a.png", CreatorID: userID, CreatedAt: created, UpdatedAt: created.Add(time.Hour)}

	t.Run("found", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Name: "Ann"}, nil)

		view, err := s.GetPost(context.Background(), authAs(uuid.New()), post.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T03:04:05.006Z", view.CreatedAt)
		assert.Equal(t, "2024-01-02T04:04:05.006Z", view.UpdatedAt)
		assert.Equal(t, "Ann", view.Creator.Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		s, _ := newPostService(t)
		_, err := s.GetPost(context.Background(), authAs(userID), "not-a-uuid")
		appErr := requireKind(t, err, apperr.KindNotFound)
		assert.Equal(t, "No post found", appErr.Message)
	})

	t.Run("unknown id", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, post.ID).Return(model.Post{}, model.ErrNotFound)

		_, err := s.GetPost(context.Background(), authAs(userID), post.ID.String())
		appErr := requireKind(t, err, apperr.KindNotFound)
		assert.Equal(t, http.StatusNotFound, appErr.Code())
	})

	t.Run("removed creator keeps id", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		deps.users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

		view, err := s.GetPost(context.Background(), authAs(uuid.New()), post.ID.String())
		require.NoError(t, err)
		assert.Equal(t, userID.String(), view.Creator.ID)
		assert.Empty(t, view.Creator.Name)
	})
}

func TestPost_GetPost_ReadsThroughCache(t *testing.T) {
	posts := mocks.NewPostStore(t)
	users := mocks.NewUserStore(t)
	postCache := mocks.NewPostCache(t)
	s := NewPost(posts, users, mocks.NewImageStore(t), postCache, mocks.NewTransactor(t), testutil.MakeNoopLogger())

	userID := uuid.New()
	post := model.Post{ID: uuid.New(), Title: "Hello", CreatorID: userID}
	users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)

	postCache.On("Get", mock.Anything, post.ID).Return(model.Post{}, false, nil).Once()
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil).Once()
	postCache.On("Set", mock.Anything, post).Return(nil).Once()

	_, err := s.GetPost(context.Background(), authAs(userID), post.ID.String())
	require.NoError(t, err)

	postCache.On("Get", mock.Anything, post.ID).Return(post, true, nil).Once()

	view, err := s.GetPost(context.Background(), authAs(userID), post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Hello", view.Title)
	posts.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestPost_GetPost_CacheFailureFallsBackToStore(t *testing.T) {
	posts := mocks.NewPostStore(t)
	users := mocks.NewUserStore(t)
	postCache := mocks.NewPostCache(t)
	s := NewPost(posts, users, mocks.NewImageStore(t), postCache, mocks.NewTransactor(t), testutil.MakeNoopLogger())

	userID := uuid.New()
	post := model.Post{ID: uuid.New(), Title: "Hello", CreatorID: userID}
	postCache.On("Get", mock.Anything, post.ID).Return(model.Post{}, false, errors.New("redis down"))
	posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	postCache.On("Set", mock.Anything, post).Return(errors.New("redis down"))
	users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)

	view, err := s.GetPost(context.Background(), authAs(userID), post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Hello", view.Title)
}

func TestPost_CreateThenGet_RoundTrip(t *testing.T) {
	s, deps := newPostService(t)
	userID := uuid.New()
	stored := map[uuid.UUID]model.Post{}

	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	expectTx(deps.tx)
	deps.posts.On("Create", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) {
		stored[p.ID] = p
		return p, nil
	})
	deps.users.On("AppendPost", mock.Anything, userID, mock.Anything).Return(nil)
	deps.posts.On("GetByID", mock.Anything, mock.Anything).Return(func(_ context.Context, id uuid.UUID) (model.Post, error) {
		p, ok := stored[id]
		if !ok {
			return model.Post{}, model.ErrNotFound
		}
		return p, nil
	})

	input := model.PostInput{Title: "Round trip", Content: "Same content", ImageURL: "images/rt.png"}
	created, err := s.CreatePost(context.Background(), authAs(userID), input)
	require.NoError(t, err)

	got, err := s.GetPost(context.Background(), authAs(userID), created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Content, got.Content)
	assert.Equal(t, input.ImageURL, got.ImageURL)
}

func TestPost_UpdatePost(t *testing.T) {
	ownerID := uuid.New()
	base := model.Post{ID: uuid.New(), Title: "Old title", Content: "Old content", ImageURL: "images/old.png", CreatorID: ownerID}
	valid := model.PostInput{Title: "New title", Content: "New content", ImageURL: "images/new.png"}

	t.Run("non-creator is forbidden", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, base.ID).Return(base, nil)

		_, err := s.UpdatePost(context.Background(), authAs(uuid.New()), base.ID.String(), valid)
		appErr := requireKind(t, err, apperr.KindForbidden)
		assert.Equal(t, http.StatusForbidden, appErr.Code())
		deps.posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("forbidden before validation", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, base.ID).Return(base, nil)

		_, err := s.UpdatePost(context.Background(), authAs(uuid.New()), base.ID.String(), model.PostInput{})
		requireKind(t, err, apperr.KindForbidden)
	})

	t.Run("missing post", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, base.ID).Return(model.Post{}, model.ErrNotFound)

		_, err := s.UpdatePost(context.Background(), authAs(ownerID), base.ID.String(), valid)
		requireKind(t, err, apperr.KindNotFound)
	})

	t.Run("invalid input from owner", func(t *testing.T) {
		s, deps := newPostService(t)
		deps.posts.On("GetByID", mock.Anything, base.ID).Return(base, nil)

		_, err := s.UpdatePost(context.Background(), authAs(ownerID), base.ID.String(), model.PostInput{Title: "abc", Content: "Long content"})
		requireKind(t, err, apperr.KindInvalidInput)
	})

	tests := []struct {
		name      string
		imageURL  string
		wantImage string
	}{
		{name: "replaces image", imageURL: "images/new.png", wantImage: "images/new.png"},
		{name: "sentinel keeps image", imageURL: model.ImageURLUnchanged, wantImage: "images/old.png"},
		{name: "empty replaces image", imageURL: "", wantImage: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newPostService(t)
			deps.posts.On("GetByID", mock.Anything, base.ID).Return(base, nil)
			deps.posts.On("Update", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
				return p.Title == "New title" && p.Content == "New content" && p.ImageURL == tt.wantImage && !p.UpdatedAt.IsZero()
			})).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })
			deps.users.On("GetByID", mock.Anything, ownerID).Return(model.User{ID: ownerID}, nil)

			input := valid
			input.ImageURL = tt.imageURL
			view, err := s.UpdatePost(context.Background(), authAs(ownerID), base.ID.String(), input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantImage, view.ImageURL)
			assert.Equal(t, "New title", view.Title)
		})
	}
}

func TestPost_DeletePost_Success(t *testing.T) {
	s, deps := newPostService(t)
	ownerID := uuid.New()
	post := model.Post{ID: uuid.New(), ImageURL: "images/a.png", CreatorID: ownerID}

	deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	expectTx(deps.tx)
	deps.users.On("RemovePost", mock.MatchedBy(inTx), ownerID, post.ID).Return(nil).Once()
	deps.posts.On("Delete", mock.MatchedBy(inTx), post.ID).Return(nil).Once()
	deps.images.On("Delete", mock.Anything, "images/a.png").Return(nil).Once()

	ok, err := s.DeletePost(context.Background(), authAs(ownerID), post.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPost_DeletePost_NonCreatorForbidden(t *testing.T) {
	s, deps := newPostService(t)
	post := model.Post{ID: uuid.New(), CreatorID: uuid.New()}
	deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	ok, err := s.DeletePost(context.Background(), authAs(uuid.New()), post.ID.String())
	requireKind(t, err, apperr.KindForbidden)
	assert.False(t, ok)
	deps.tx.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}

func TestPost_DeletePost_ImageCleanupFailureIsIgnored(t *testing.T) {
	s, deps := newPostService(t)
	ownerID := uuid.New()
	post := model.Post{ID: uuid.New(), ImageURL: "images/a.png", CreatorID: ownerID}

	deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	expectTx(deps.tx)
	deps.users.On("RemovePost", mock.Anything, ownerID, post.ID).Return(nil)
	deps.posts.On("Delete", mock.Anything, post.ID).Return(nil)
	deps.images.On("Delete", mock.Anything, "images/a.png").Return(errors.New("gone"))

	ok, err := s.DeletePost(context.Background(), authAs(ownerID), post.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPost_DeletePost_TxFailureKeepsImage(t *testing.T) {
	s, deps := newPostService(t)
	ownerID := uuid.New()
	post := model.Post{ID: uuid.New(), ImageURL: "images/a.png", CreatorID: ownerID}

	deps.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	expectTx(deps.tx)
	deps.users.On("RemovePost", mock.Anything, ownerID, post.ID).Return(nil)
	deps.posts.On("Delete", mock.Anything, post.ID).Return(errors.New("conn reset"))

	_, err := s.DeletePost(context.Background(), authAs(ownerID), post.ID.String())
	require.Error(t, err)
	deps.images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPost_PostsOf(t *testing.T) {
	s, deps := newPostService(t)
	ownerID := uuid.New()
	first := model.Post{ID: uuid.New(), Title: "first", CreatorID: ownerID}
	second := model.Post{ID: uuid.New(), Title: "second", CreatorID: ownerID}

	deps.posts.On("ListByOwner", mock.Anything, ownerID).Return([]model.Post{first, second}, nil)
	deps.users.On("GetByID", mock.Anything, ownerID).Return(model.User{ID: ownerID}, nil).Once()

	views, err := s.PostsOf(context.Background(), authAs(ownerID), ownerID.String())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Title)
	assert.Equal(t, "second", views[1].Title)
}

func TestPost_StoreImage(t *testing.T) {
	t.Run("clears old path first", func(t *testing.T) {
		s, deps := newPostService(t)
		upload := model.ImageUpload{Name: "a.png", ContentType: "image/png", Body: bytes.NewReader([]byte("png")), OldPath: "images/old.png"}

		deps.images.On("Delete", mock.Anything, "images/old.png").Return(nil).Once()
		deps.images.On("Save", mock.Anything, upload).Return("images/abc-a.png", nil).Once()

		path, err := s.StoreImage(context.Background(), authAs(uuid.New()), upload)
		require.NoError(t, err)
		assert.Equal(t, "images/abc-a.png", path)
	})

	t.Run("save failure", func(t *testing.T) {
		s, deps := newPostService(t)
		upload := model.ImageUpload{Name: "a.png"}
		deps.images.On("Save", mock.Anything, upload).Return("", errors.New("bucket missing"))

		_, err := s.StoreImage(context.Background(), authAs(uuid.New()), upload)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store image")
	})
}
