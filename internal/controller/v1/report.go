package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/model/types"
	"labtrail.dev/backend/internal/pkg/flog"
	"labtrail.dev/backend/internal/pkg/rekuest"
	"labtrail.dev/backend/internal/server/svr"
	"labtrail.dev/backend/internal/service"
)

type Report struct {
	fx.In

	ReportService *service.Report
}

func RegisterReport(v1 *svr.V1, c Report) {
	v1.Post("/reports", c.SubmitReport)
	v1.Get("/reports/:taskId", c.GetTaskStatus)
}

func (c *Report) SubmitReport(ctx *fiber.Ctx) error {
	var req types.ReportRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	taskID, err := c.ReportService.SubmitReport(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("taskId", taskID).
		Int("events", len(req.Events)).
		Msg("report task queued")

	return ctx.Status(fiber.StatusAccepted).JSON(types.ReportTaskAck{TaskID: taskID})
}

func (c *Report) GetTaskStatus(ctx *fiber.Ctx) error {
	status, err := c.ReportService.GetTaskStatus(ctx.Params("taskId"))
	if err != nil {
		return err
	}

	return ctx.JSON(status)
}
