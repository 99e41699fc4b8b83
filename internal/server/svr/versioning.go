package svr

import (
	"github.com/gofiber/fiber/v2"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/pkg/middlewares"
)

type V1 struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Admin, *Meta) {
	v1 := app.Group("/api/v1")
	admin := app.Group("/api/_/admin", middlewares.AdminAuth(conf))
	meta := app.Group("/")

	return &V1{Router: v1}, &Admin{Router: admin}, &Meta{Router: meta}
}
