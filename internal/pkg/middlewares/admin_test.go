package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/pkg/middlewares"
	"labtrail.dev/backend/internal/server/httpserver"
)

func adminTestApp(adminKey string) *fiber.App {
	conf := &appconfig.Config{}
	conf.AdminKey = adminKey

	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	app.Post("/purge", middlewares.AdminAuth(conf), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func requestWithAuth(t *testing.T, app *fiber.App, auth string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/purge", nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	return resp.StatusCode
}

func TestAdminAuth(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		app := adminTestApp("topsecret")
		assert.Equal(t, http.StatusNoContent, requestWithAuth(t, app, "Bearer topsecret"))
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := adminTestApp("topsecret")
		assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, app, "Bearer guessing"))
	})

	t.Run("MissingHeader", func(t *testing.T) {
		app := adminTestApp("topsecret")
		assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, app, ""))
	})

	t.Run("DisabledWhenUnconfigured", func(t *testing.T) {
		app := adminTestApp("")
		assert.Equal(t, http.StatusNotFound, requestWithAuth(t, app, "Bearer topsecret"))
	})
}
