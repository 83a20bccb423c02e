package bootstrap

import (
	"context"

	"studio-booking/internal/infra/sweep"

	"go.uber.org/fx"
)

var SweepModule = fx.Module("sweep",
	fx.Provide(
		sweep.NewSweeper,
	),
	fx.Invoke(StartSweeper),
)

func StartSweeper(lc fx.Lifecycle, sweeper *sweep.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
