package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophfeed-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, email, name, password_hash, status, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.querier(ctx).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.withPosts(ctx, user)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.querier(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return r.withPosts(ctx, user)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, password_hash, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.querier(ctx).QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Status,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (model.User, error) {
	query := `UPDATE users SET status = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.querier(ctx).QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user status: %w", err)
	}

	return r.withPosts(ctx, user)
}

func (r *UserRepository) AppendPost(ctx context.Context, userID, postID uuid.UUID) error {
	const query = `INSERT INTO user_posts (user_id, post_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.db.querier(ctx).Exec(ctx, query, userID, postID); err != nil {
		return fmt.Errorf("failed to append user post: %w", err)
	}
	return nil
}

func (r *UserRepository) RemovePost(ctx context.Context, userID, postID uuid.UUID) error {
	const query = `DELETE FROM user_posts WHERE user_id = $1 AND post_id = $2`
	if _, err := r.db.querier(ctx).Exec(ctx, query, userID, postID); err != nil {
		return fmt.Errorf("failed to remove user post: %w", err)
	}
	return nil
}

func (r *UserRepository) withPosts(ctx context.Context, user model.User) (model.User, error) {
	const query = `SELECT post_id FROM user_posts WHERE user_id = $1 ORDER BY seq`

	rows, err := r.db.querier(ctx).Query(ctx, query, user.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user posts: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user posts: %w", err)
	}

	user.PostIDs = ids
	return user, nil
}
