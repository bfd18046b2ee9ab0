package components

import (
	"staycal/internal/infra/cache"
	"staycal/internal/infra/readstore"
	"staycal/internal/infra/uow"
	"staycal/internal/pkg/config"
	"staycal/internal/usecase/queries"
	"staycal/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarViewRepo)),
			fx.As(new(queries.CalendarStoreLoader)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		func(u shared.UnitOfWork) queries.UnitOfWorkReader { return u },
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewQuoteCache,
			fx.As(new(shared.QuoteCache)),
		),
	),
)

func NewQuoteCache(client *redis.Client, cfg config.Config) *cache.QuoteCache {
	return cache.NewQuoteCache(client, cfg.Cache.QuoteTTL)
}
