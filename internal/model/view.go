package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the textual date-time format used in API projections.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// UserView is the API projection of a user.
type UserView struct {
	ID      string
	Name    string
	Email   string
	Status  string
	PostIDs []string
}

// PostView is the API projection of a post with its creator.
type PostView struct {
	ID        string
	Title     string
	Content   string
	ImageURL  string
	Creator   UserView
	CreatedAt string
	UpdatedAt string
}

// PostPage is one page of the feed.
type PostPage struct {
	Posts      []PostView
	TotalPosts int
}

// AuthData is the result of a successful login.
type AuthData struct {
	Token  string
	UserID string
}

// Violation describes a single failed field constraint.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewUserView projects a stored user.
func NewUserView(u User) UserView {
	ids := make([]string, 0, len(u.PostIDs))
	for _, id := range u.PostIDs {
		ids = append(ids, id.String())
	}
	return UserView{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Status:  u.Status,
		PostIDs: ids,
	}
}

// NewPostView projects a stored post together with its creator.
func NewPostView(p Post, creator User) PostView {
	cv := NewUserView(creator)
	if creator.ID == uuid.Nil {
		cv.ID = p.CreatorID.String()
	}
	return PostView{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Creator:   cv,
		CreatedAt: FormatTimestamp(p.CreatedAt),
		UpdatedAt: FormatTimestamp(p.UpdatedAt),
	}
}
