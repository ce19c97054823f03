package bootstrap

import (
	"machine-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	AMQPModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
