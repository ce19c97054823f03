package bootstrap

import (
	"context"

	"machine-rental/internal/infra/events"
	"machine-rental/internal/pkg/config"
	"machine-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (*events.AMQPPublisher, error) {
	publisher, cleanup, err := events.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
