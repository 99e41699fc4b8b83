package v1

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	opts := []fx.Option{
		fx.Invoke(
			RegisterAnalyte,
			RegisterSeries,
			RegisterPivot,
			RegisterReport,
		),
	}
	return fx.Module("controllers.v1", opts...)
}
