package components

import (
	"slotswap/internal/infra/db"
	"slotswap/internal/infra/readstore"
	"slotswap/internal/infra/uow"
	"slotswap/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewSlotViewStore,
			fx.As(new(queries.SlotQueries)),
		),
		fx.Annotate(
			readstore.NewMeetingViewStore,
			fx.As(new(queries.MeetingQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationViewStore,
			fx.As(new(queries.NotificationQueries)),
		),
		fx.Annotate(
			readstore.NewPreferenceViewStore,
			fx.As(new(queries.PreferenceQueries)),
		),
		fx.Annotate(
			readstore.NewWaitlistViewStore,
			fx.As(new(queries.WaitlistQueries)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
