package model

import "github.com/google/uuid"

// TokenPayload is the identity embedded in an access token.
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Issue(payload TokenPayload) (string, error)
	Parse(token string) (TokenPayload, error)
}

// PasswordHasher hashes passwords irreversibly and verifies them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
