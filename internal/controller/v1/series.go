package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/model"
	"labtrail.dev/backend/internal/server/svr"
	"labtrail.dev/backend/internal/service"
)

type Series struct {
	fx.In

	SeriesService *service.Series
}

func RegisterSeries(v1 *svr.V1, c Series) {
	v1.Get("/series", c.GetSeries)
}

func (c *Series) GetSeries(ctx *fiber.Ctx) error {
	analytes := strings.Split(ctx.Query("analytes"), ",")
	start := ctx.Query("start")
	end := ctx.Query("end")

	rows, err := c.SeriesService.AggregateDailyMeans(ctx.UserContext(), analytes, start, end)
	if err != nil {
		return err
	}

	return ctx.JSON(model.SeriesQueryResult{
		Rows: rows,
	})
}
