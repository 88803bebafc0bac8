package components

import (
	"relove/internal/infra/db"
	"relove/internal/infra/readstore"
	"relove/internal/infra/repository"
	"relove/internal/infra/uow"
	"relove/internal/usecase/queries"
	"relove/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		fx.Annotate(
			readstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Pool-bound idempotency repository: the claim runs outside the
		// booking transaction so a crash leaves the key visible as
		// processing instead of rolling it back.
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
