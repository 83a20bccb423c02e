package components

import (
	"studio-booking/internal/infra/payment"
	"studio-booking/internal/infra/repository"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		payment.NewStripeGateway,
		fx.Annotate(
			repository.NewSlotReadStore,
			fx.As(new(shared.SlotReads)),
		),
		fx.Annotate(
			repository.NewHoldRepository,
			fx.As(new(shared.HoldReads)),
			fx.As(new(shared.HoldSweeper)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingReads)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(shared.CustomerReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
