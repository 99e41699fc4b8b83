package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtrail.dev/backend/internal/pkg/lterr"
)

func errorTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Get("/notfound", func(ctx *fiber.Ctx) error {
		return lterr.ErrNotFound
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return lterr.ErrInvalidReq.Msg("invalid request: expect date in form of `YYYY-MM-DD`, got `%s`", "20240101")
	})
	app.Get("/violations", func(ctx *fiber.Ctx) error {
		return lterr.NewInvalidViolations([]string{"analyte is required"})
	})
	app.Get("/oops", func(ctx *fiber.Ctx) error {
		return errors.New("something exploded")
	})
	return app
}

func fetchJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))

	return resp.StatusCode, body
}

func TestErrorHandler(t *testing.T) {
	app := errorTestApp()

	t.Run("NotFound", func(t *testing.T) {
		status, body := fetchJSON(t, app, "/notfound")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, lterr.CodeNotFound, body["code"])
	})

	t.Run("InvalidRequestKeepsMessage", func(t *testing.T) {
		status, body := fetchJSON(t, app, "/invalid")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, lterr.CodeInvalidRequest, body["code"])
		assert.Contains(t, body["message"], "20240101")
	})

	t.Run("ViolationsAreInlined", func(t *testing.T) {
		status, body := fetchJSON(t, app, "/violations")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "violations")
	})

	t.Run("UnknownErrorBecomesInternal", func(t *testing.T) {
		status, body := fetchJSON(t, app, "/oops")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, lterr.CodeInternalError, body["code"])
		// internal messages must not leak to the client
		assert.NotContains(t, body["message"], "exploded")
	})

	t.Run("FiberErrorKeepsStatus", func(t *testing.T) {
		status, _ := fetchJSON(t, app, "/definitely-not-registered")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
