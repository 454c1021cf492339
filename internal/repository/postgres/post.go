package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophfeed-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `p.id, p.title, p.content, p.image_url, p.creator_id, p.created_at, p.updated_at`

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.CreatorID,
		&post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts AS p (id, title, content, image_url, creator_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.querier(ctx).QueryRow(ctx, query,
		post.ID, post.Title, post.Content, post.ImageURL, post.CreatorID,
		post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`

	post, err := scanPost(r.db.querier(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p
			  ORDER BY p.created_at DESC, p.id
			  OFFSET $1 LIMIT $2`

	return r.collect(ctx, query, offset, limit)
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.querier(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM user_posts up
			  JOIN posts p ON p.id = up.post_id
			  WHERE up.user_id = $1
			  ORDER BY up.seq`

	return r.collect(ctx, query, ownerID)
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `UPDATE posts AS p SET title = $2, content = $3, image_url = $4, updated_at = $5
			  WHERE p.id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.querier(ctx).QueryRow(ctx, query,
		post.ID, post.Title, post.Content, post.ImageURL, post.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM posts WHERE id = $1`
	cmd, err := r.db.querier(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostRepository) collect(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := r.db.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
