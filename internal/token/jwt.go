package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// Claims represents JWT claims carrying the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager issuing tokens valid for ttl.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// Issue signs an access token embedding the payload.
func (j *JWT) Issue(payload model.TokenPayload) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: payload.UserID,
		Email:  payload.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the token signature and expiry and returns its payload.
func (j *JWT) Parse(tokenString string) (model.TokenPayload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.TokenPayload{}, fmt.Errorf("access token is invalid")
	}
	if claims.UserID == uuid.Nil {
		return model.TokenPayload{}, fmt.Errorf("access token has no user id")
	}
	return model.TokenPayload{UserID: claims.UserID, Email: claims.Email}, nil
}
