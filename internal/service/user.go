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

// User implements account operations.
type User struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// CreateUser registers a new account. A taken email is reported as a conflict
// even when the rest of the input is invalid.
func (s *User) CreateUser(ctx context.Context, input model.CreateUserInput) (model.UserView, error) {
	s.logger.Debug("User service: creating user",
		"email", input.Email)

	violations := validation.ValidateUser(input.Email, input.Password)

	if validation.IsEmail(input.Email) {
		existing, err := s.userStore.GetByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("User service: failed to get user by email",
				"email", input.Email,
				"error", err.Error())
			return model.UserView{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		if existing.ID != uuid.Nil {
			s.logger.Info("User service: user already exists",
				"email", input.Email)
			return model.UserView{}, apperr.NewUserAlreadyExists(input.Email)
		}
	}

	if len(violations) > 0 {
		return model.UserView{}, apperr.NewInvalidInput(violations)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Status:       model.DefaultUserStatus,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.UserView{}, apperr.NewUserAlreadyExists(input.Email)
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", input.Email,
			"error", err.Error())
		return model.UserView{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID)

	return model.NewUserView(user), nil
}

// Login verifies credentials and issues an access token.
func (s *User) Login(ctx context.Context, email, password string) (model.AuthData, error) {
	s.logger.Debug("User service: login attempt",
		"email", email)

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthData{}, apperr.NewLoginUserNotFound()
	}
	if err != nil {
		return model.AuthData{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Info("User service: password mismatch",
			"user_id", user.ID)
		return model.AuthData{}, apperr.NewIncorrectPassword()
	}

	token, err := s.tokenManager.Issue(model.TokenPayload{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("User service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthData{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return model.AuthData{Token: token, UserID: user.ID.String()}, nil
}

// CurrentUser returns the account the caller is authenticated as.
func (s *User) CurrentUser(ctx context.Context, auth model.AuthContext) (model.UserView, error) {
	user, err := s.authenticatedUser(ctx, auth)
	if err != nil {
		return model.UserView{}, err
	}

	return model.NewUserView(user), nil
}

// UpdateStatus overwrites the caller's status.
func (s *User) UpdateStatus(ctx context.Context, auth model.AuthContext, status string) (model.UserView, error) {
	if _, err := s.authenticatedUser(ctx, auth); err != nil {
		return model.UserView{}, err
	}

	user, err := s.userStore.UpdateStatus(ctx, auth.UserID, status)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserView{}, apperr.NewUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to update status",
			"user_id", auth.UserID,
			"error", err.Error())
		return model.UserView{}, fmt.Errorf("failed to update status: %w", err)
	}

	return model.NewUserView(user), nil
}

func (s *User) authenticatedUser(ctx context.Context, auth model.AuthContext) (model.User, error) {
	if !auth.IsAuthenticated {
		return model.User{}, apperr.NewNotAuthenticated()
	}

	user, err := s.userStore.GetByID(ctx, auth.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
