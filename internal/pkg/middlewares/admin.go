package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/pkg/lterr"
)

// AdminAuth guards the admin endpoint group with a static bearer key.
// An empty configured key disables the whole group.
func AdminAuth(conf *appconfig.Config) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if conf.AdminKey == "" {
			return lterr.ErrNotFound
		}
		key := strings.TrimSpace(strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer"))
		if subtle.ConstantTimeCompare([]byte(key), []byte(conf.AdminKey)) != 1 {
			return lterr.New(fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid admin credentials")
		}
		return ctx.Next()
	}
}
