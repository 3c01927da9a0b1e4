package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func tokenUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), identity.Profile{
		Name:   "Siti Rahma",
		Email:  "siti@example.com",
		Role:   identity.BSP,
		Active: true,
	}, "hash", time.Now())
	require.NoError(t, err)
	return user
}

// whoami echoes the authenticated actor id.
func whoami(tokens *TokenIssuer) *echo.Echo {
	e := echo.New()
	e.Use(tokens.Middleware(func(c echo.Context) bool {
		return c.Path() == "/open"
	}))
	e.GET("/me", func(c echo.Context) error {
		id, err := actorID(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, id.String())
	})
	e.GET("/open", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func call(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, tokenType+" "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewTokenIssuer(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	require.Error(t, err)

	_, err = NewTokenIssuer(testSecret, 0)
	require.Error(t, err)

	_, err = NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
}

func TestTokenIssuer_Issue(t *testing.T) {
	tokens, err := NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	user := tokenUser(t)
	now := time.Now().Truncate(time.Second)

	signed, expiresAt, err := tokens.Issue(user, now)

	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims := new(Claims)
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID().String(), claims.Subject)
	assert.Equal(t, "bsp", claims.Role)
	assert.Equal(t, tokenIssuerName, claims.Issuer)
}

func TestTokenIssuer_Middleware(t *testing.T) {
	tokens, err := NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	e := whoami(tokens)
	user := tokenUser(t)

	t.Run("valid token exposes the actor", func(t *testing.T) {
		signed, _, err := tokens.Issue(user, time.Now())
		require.NoError(t, err)

		rec := call(e, "/me", signed)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID().String(), rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec := call(e, "/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, _, err := tokens.Issue(user, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		rec := call(e, "/me", signed)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, err := NewTokenIssuer("another-secret", time.Hour)
		require.NoError(t, err)
		signed, _, err := other.Issue(user, time.Now())
		require.NoError(t, err)

		rec := call(e, "/me", signed)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("skipped route needs no token", func(t *testing.T) {
		rec := call(e, "/open", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
