package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"blogvote-api/internal/models"
)

// ErrInvalidToken is the uniform outcome for every token failure: bad
// signature, wrong algorithm, malformed structure or expiry. Callers
// must not learn why a token was rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed bearer tokens. It holds the
// signing secret, algorithm and lifetime fixed at process start.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a TokenService for the given secret,
// algorithm name (e.g. "HS256") and token lifetime.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs a token carrying the user identity, expiring after the
// configured lifetime.
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token's signature and expiry and returns its
// claims. Any failure yields ErrInvalidToken.
func (s *TokenService) Parse(tokenString string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
