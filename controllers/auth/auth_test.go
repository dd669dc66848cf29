package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"unique-travel/logger"
	"unique-travel/services/token"
	"unique-travel/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *token.Service) {
	tokens := token.NewServiceWithSecret([]byte("test-secret"), time.Hour)
	ctrl := NewAuthController(tokens, logger.NewAsyncLogger(nil))

	app := fiber.New()
	app.Post("/jwt", ctrl.IssueToken)
	return app, tokens
}

func TestIssueTokenRoundTrip(t *testing.T) {
	app, tokens := newTestApp()

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body types.ApiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenMissingEmail(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
