package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"unique-travel/constants"
	"unique-travel/services/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDirectory is a mock implementation of role.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) RoleOf(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func newTestApp(roles *MockDirectory) (*fiber.App, *token.Service) {
	tokens := token.NewServiceWithSecret([]byte("test-secret"), time.Hour)
	auth := NewAuth(tokens, roles)

	app := fiber.New()
	app.Get("/protected", auth.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString(ClaimsEmail(c))
	})
	app.Get("/admin-only", auth.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/guide-only", auth.RequireTourGuide(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, tokens
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app, _ := newTestApp(&MockDirectory{})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app, _ := newTestApp(&MockDirectory{})

	for _, header := range []string{"Bearer", "Basic abc", "token-without-scheme"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app, _ := newTestApp(&MockDirectory{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	app, tokens := newTestApp(&MockDirectory{})

	signed, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	roles := &MockDirectory{}
	roles.On("RoleOf", "a@x.com").Return(constants.RoleTourist, nil)
	app, tokens := newTestApp(roles)

	signed, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	roles.AssertExpectations(t)
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	roles := &MockDirectory{}
	roles.On("RoleOf", "a@x.com").Return(constants.RoleNone, nil)
	app, tokens := newTestApp(roles)

	signed, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	roles := &MockDirectory{}
	roles.On("RoleOf", "admin@x.com").Return(constants.RoleAdmin, nil)
	app, tokens := newTestApp(roles)

	signed, err := tokens.Issue("admin@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	roles.AssertExpectations(t)
}

func TestRequireTourGuideAllowsGuideOnly(t *testing.T) {
	roles := &MockDirectory{}
	roles.On("RoleOf", "guide@x.com").Return(constants.RoleTourGuide, nil)
	roles.On("RoleOf", "admin@x.com").Return(constants.RoleAdmin, nil)
	app, tokens := newTestApp(roles)

	guideToken, err := tokens.Issue("guide@x.com")
	require.NoError(t, err)
	adminToken, err := tokens.Issue("admin@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guide-only", nil)
	req.Header.Set("Authorization", "Bearer "+guideToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Admin is not a tour guide; the gate checks the exact role.
	req = httptest.NewRequest("GET", "/guide-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthMissingHeaderNoRoleLookup(t *testing.T) {
	roles := &MockDirectory{}
	app, _ := newTestApp(roles)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	roles.AssertNotCalled(t, "RoleOf", mock.Anything)
}
