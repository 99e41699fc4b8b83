package service

import (
	"context"

	"go.uber.org/fx"

	"labtrail.dev/backend/internal/app/appentry"
)

func Bootstrap() {
	opts := []fx.Option{}
	opts = append(opts, appentry.ProvideOptions()...)
	opts = append(opts, fx.Invoke(run))

	app := fx.New(opts...)

	ctx := context.Background()
	err := app.Start(ctx)
	if err != nil {
		panic(err)
	}
}
