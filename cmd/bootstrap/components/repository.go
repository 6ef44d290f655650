package components

import (
	"minutes-recharge/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewAccountRepository,
		repository.NewCheckoutAttemptRepository,
		repository.NewCallRecordRepository,
	),
)
