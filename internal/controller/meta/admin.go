package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/server/svr"
)

type AdminController struct {
	fx.In
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/purge", c.PurgeCache)
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	if err := cache.Flush(); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
