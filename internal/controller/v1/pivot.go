package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/server/svr"
	"labtrail.dev/backend/internal/service"
)

type Pivot struct {
	fx.In

	PivotService *service.Pivot
}

func RegisterPivot(v1 *svr.V1, c Pivot) {
	v1.Get("/matrix/pivot", c.GetPivotTable)
}

func (c *Pivot) GetPivotTable(ctx *fiber.Ctx) error {
	table, err := c.PivotService.GetPivotTable(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(table)
}
