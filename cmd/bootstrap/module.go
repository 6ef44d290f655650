package bootstrap

import (
	"minutes-recharge/cmd/bootstrap/components"
	"minutes-recharge/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(clock.NewRealClock),
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	DBModule,
	JWTModule,
	SessionModule,
	EventsModule,
	components.RepositoryModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
