package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerguide/careerguide-api/internal/auth"
	"github.com/careerguide/careerguide-api/internal/types"
)

func newAuthApp(tm *auth.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*types.CustomError); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})
	whoami := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": ClaimsFrom(c).Subject})
	}
	app.Get("/user", AuthUser(tm), whoami)
	app.Get("/admin", AuthAdmin(tm), whoami)
	app.Get("/super", AuthSuperAdmin(tm), whoami)
	return app
}

func TestAuthMissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newAuthApp(tm)

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(fiber.MethodGet, "/user", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newAuthApp(tm)

	other := auth.NewTokenManager("other-secret", time.Hour)
	forged, err := other.Generate("u1", "a@example.com", auth.UserTypeUser, "")
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged} {
		req := httptest.NewRequest(fiber.MethodGet, "/user", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestAuthUserTypeMismatch(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newAuthApp(tm)

	userToken, err := tm.Generate("u1", "a@example.com", auth.UserTypeUser, "")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRoleGate(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newAuthApp(tm)

	adminToken, err := tm.Generate("a1", "admin@example.com", auth.UserTypeAdmin, "admin")
	require.NoError(t, err)
	superToken, err := tm.Generate("a2", "root@example.com", auth.UserTypeAdmin, "super_admin")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/super", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/super", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+superToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthStoresClaims(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	app := newAuthApp(tm)

	token, err := tm.Generate("u42", "a@example.com", auth.UserTypeUser, "")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/user", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Subject string `json:"subject"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u42", body.Subject)
}
