package auth

import (
	"basecamp/errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret-with-enough-entropy", "basecamp", time.Hour)

	t.Run("should resolve the user of a token it issued", func(t *testing.T) {
		req := require.New(t)
		userID := uuid.New()

		token, err := authenticator.IssueToken(userID)
		req.NoError(err)

		got, err := authenticator.Authenticate(token)
		req.NoError(err)
		req.Equal(userID, got)
	})

	t.Run("should reject a garbage token", func(t *testing.T) {
		req := require.New(t)
		_, err := authenticator.Authenticate("invalid-token-string")
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		req := require.New(t)
		other := NewJWTAuthenticator("another-secret", "basecamp", time.Hour)
		token, err := other.IssueToken(uuid.New())
		req.NoError(err)

		_, err = authenticator.Authenticate(token)
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should reject a token from another issuer", func(t *testing.T) {
		req := require.New(t)
		other := NewJWTAuthenticator("test-secret-with-enough-entropy", "someone-else", time.Hour)
		token, err := other.IssueToken(uuid.New())
		req.NoError(err)

		_, err = authenticator.Authenticate(token)
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)
		expired := NewJWTAuthenticator("test-secret-with-enough-entropy", "basecamp", -time.Minute)
		token, err := expired.IssueToken(uuid.New())
		req.NoError(err)

		_, err = authenticator.Authenticate(token)
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should reject a token whose user id is not a uuid", func(t *testing.T) {
		req := require.New(t)
		claims := &CustomClaims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "basecamp",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-secret-with-enough-entropy"))
		req.NoError(err)

		_, err = authenticator.Authenticate(token)
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})
}
