package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	tokenIssuerName = "procurement"
	tokenContextKey = "user"
	tokenType       = "Bearer"
)

var errMissingActor = echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid bearer token")

// Claims are carried by every bearer token. The subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed token for user and the moment it expires.
func (t *TokenIssuer) Issue(user *identity.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		Role: user.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			Subject:   user.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Middleware rejects requests without a valid bearer token unless skipper says otherwise.
func (t *TokenIssuer) Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper:       skipper,
		SigningKey:    t.secret,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return errMissingActor.WithInternal(err)
		},
	})
}

// actorID returns the id of the authenticated user of the request.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	token, ok := ctx.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return kernel.UUID{}, errMissingActor
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return kernel.UUID{}, errMissingActor
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errMissingActor.WithInternal(err)
	}
	return id, nil
}
