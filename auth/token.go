//go:generate go run go.uber.org/mock/mockgen -source=token.go -destination=../mocks/mock_authenticator.go -package=mocks
package auth

import (
	"basecamp/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Authenticator resolves a bearer token into the identity of the caller.
// The core never looks at credentials, only at the returned user id.
type Authenticator interface {
	Authenticate(token string) (uuid.UUID, error)
}

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTAuthenticator struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewJWTAuthenticator(secret, issuer string, duration time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret), issuer: issuer, duration: duration}
}

// IssueToken creates a signed HS256 token for userID.
// Token issuance belongs to the identity provider; this exists for tooling and tests.
func (a *JWTAuthenticator) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    a.issuer,
			Subject:   userID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate parses and validates the signature, issuer and expiration of a token.
func (a *JWTAuthenticator) Authenticate(tokenString string) (uuid.UUID, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid token", errors.ErrUnauthenticated)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed user id claim", errors.ErrUnauthenticated)
	}
	return userID, nil
}
