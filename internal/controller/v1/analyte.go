package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/model"
	"labtrail.dev/backend/internal/server/svr"
	"labtrail.dev/backend/internal/service"
)

type Analyte struct {
	fx.In

	AnalyteService *service.Analyte
}

func RegisterAnalyte(v1 *svr.V1, c Analyte) {
	v1.Get("/analytes", c.GetAnalytes)
}

func (c *Analyte) GetAnalytes(ctx *fiber.Ctx) error {
	analytes, err := c.AnalyteService.ListAnalytes(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(model.CatalogResult{
		Analytes: analytes,
	})
}
