package components

import (
	"machine-rental/internal/infra/cache"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/infra/readstore"
	"machine-rental/internal/infra/repository"
	"machine-rental/internal/infra/uow"
	"machine-rental/internal/pkg/config"
	"machine-rental/internal/usecase"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewBookingReadStore,
		readstore.NewMachineReadStore,
		readstore.NewDashboardReadStore,
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(usecase.AuthReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewBookingRepository,
		repository.NewMachineRepository,
		repository.NewUserRepository,
		repository.NewIdempotencyRepository,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewCatalogCache,
			fx.As(new(queries.CatalogCache)),
			fx.As(new(commands.CatalogInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCatalogCache(client *redis.Client, cfg config.Config) *cache.CatalogCache {
	return cache.NewCatalogCache(client, cfg.Cache)
}
