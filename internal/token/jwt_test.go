package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	payload := model.TokenPayload{UserID: uuid.New(), Email: "user@example.com"}

	tok, err := j.Issue(payload)
	require.NoError(t, err)
	got, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestJWT_ValidForTTL(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	tok, err := j.Issue(model.TokenPayload{UserID: uuid.New(), Email: "user@example.com"})
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	j := NewJWT("secret", time.Hour)
	j.now = func() time.Time { return issuedAt }

	tok, err := j.Issue(model.TokenPayload{UserID: uuid.New()})
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Parse(tok)
	require.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, err := NewJWT("secret", time.Hour).Issue(model.TokenPayload{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).Parse(tok)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).Parse("not.a.token")
	require.Error(t, err)
}

func TestJWT_RejectsNonHMAC(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).Parse(tok)
	require.Error(t, err)
}
