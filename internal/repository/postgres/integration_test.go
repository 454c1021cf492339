//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/gophfeed-server/internal/model"
	repo "github.com/dtroode/gophfeed-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "gophfeed_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/gophfeed_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	now := time.Now().UTC()
	return model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "name",
		PasswordHash: "hash",
		Status:       model.DefaultUserStatus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newPost(owner uuid.UUID, title string, createdAt time.Time) model.Post {
	return model.Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   "content",
		ImageURL:  "images/" + title + ".png",
		CreatorID: owner,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	pr := repo.NewPostRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		u := newUser("user@example.com")
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, saved.ID)

		_, err = ur.Create(ctx, newUser("user@example.com"))
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
		require.Empty(t, byEmail.PostIDs)

		updated, err := ur.UpdateStatus(ctx, u.ID, "busy")
		require.NoError(t, err)
		require.Equal(t, "busy", updated.Status)

		_, err = ur.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("post_repository", func(t *testing.T) {
		owner := newUser("owner@example.com")
		_, err := ur.Create(ctx, owner)
		require.NoError(t, err)

		base := time.Now().UTC().Truncate(time.Millisecond)
		var created []model.Post
		for i := 0; i < 4; i++ {
			p := newPost(owner.ID, fmt.Sprintf("post%d", i), base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, conn.WithinTx(ctx, func(ctx context.Context) error {
				saved, err := pr.Create(ctx, p)
				if err != nil {
					return err
				}
				return ur.AppendPost(ctx, owner.ID, saved.ID)
			}))
			created = append(created, p)
		}

		total, err := pr.Count(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, total, 4)

		page, err := pr.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, created[1].ID, page[0].ID)
		require.Equal(t, created[0].ID, page[1].ID)

		owned, err := pr.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, owned, 4)
		require.Equal(t, created[0].ID, owned[0].ID)

		withPosts, err := ur.GetByID(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{created[0].ID, created[1].ID, created[2].ID, created[3].ID}, withPosts.PostIDs)

		p := created[3]
		p.Title = "renamed"
		p.UpdatedAt = time.Now().UTC()
		updated, err := pr.Update(ctx, p)
		require.NoError(t, err)
		require.Equal(t, "renamed", updated.Title)

		require.NoError(t, conn.WithinTx(ctx, func(ctx context.Context) error {
			if err := ur.RemovePost(ctx, owner.ID, p.ID); err != nil {
				return err
			}
			return pr.Delete(ctx, p.ID)
		}))
		_, err = pr.GetByID(ctx, p.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		require.ErrorIs(t, pr.Delete(ctx, p.ID), model.ErrNotFound)

		withPosts, err = ur.GetByID(ctx, owner.ID)
		require.NoError(t, err)
		require.NotContains(t, withPosts.PostIDs, p.ID)
	})

	t.Run("transaction_rollback", func(t *testing.T) {
		owner := newUser("rollback@example.com")
		_, err := ur.Create(ctx, owner)
		require.NoError(t, err)

		p := newPost(owner.ID, "rolledback", time.Now().UTC())
		boom := errors.New("boom")
		err = conn.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := pr.Create(ctx, p); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = pr.GetByID(ctx, p.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
