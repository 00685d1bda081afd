package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol1corejz/invoicedash/internal/auth"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(AuthMiddleware)

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/login", ok)
	app.Get("/logout", ok)
	app.Get("/dashboard", ok)
	app.Get("/dashboard/invoices", ok)

	return app
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, err := auth.GenerateToken(uuid.New())
	require.NoError(t, err)

	return &http.Cookie{Name: "jwt", Value: token}
}

func TestUnauthenticatedDashboardRedirectsToLogin(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthenticatedDashboardIsAllowed(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthenticatedLoginRedirectsToDashboard(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestUnauthenticatedLoginIsAllowed(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGarbageTokenCountsAsSignedOut(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "not-a-token"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLogoutStaysReachableWhenAuthenticated(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
