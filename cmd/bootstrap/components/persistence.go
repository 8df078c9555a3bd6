package components

import (
	"royalbike/internal/infra/cartcache"
	"royalbike/internal/infra/db"
	"royalbike/internal/infra/readstore"
	"royalbike/internal/infra/uow"
	"royalbike/internal/usecase/commands"
	"royalbike/internal/usecase/queries"
	"royalbike/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
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
		// Product
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(commands.ProductReader)),
		),
		// Sale
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var cacheModule = fx.Module("persistence/cartcache",
	fx.Provide(
		fx.Annotate(
			cartcache.New,
			fx.As(new(commands.CartStore)),
			fx.As(new(queries.CartReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
