package cmd

import (
	"log/slog"

	"swiftwash/internal/adapters/out/postgres"
	"swiftwash/internal/adapters/out/postgres/addressrepo"
	"swiftwash/internal/adapters/out/postgres/auditrepo"
	redisadapter "swiftwash/internal/adapters/out/redis"
	rediscounterrepo "swiftwash/internal/adapters/out/redis/counterrepo"
	"swiftwash/internal/core/application/usecases/commands"
	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/services"
	"swiftwash/internal/core/ports"
	"swiftwash/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	redisClient  *redis.Client
	counterStore string
	uowFactory   ports.UnitOfWorkFactory
	logger       *slog.Logger
}

// NewCompositionRoot wires the application's dependencies. The counter
// store backend follows the COUNTER_STORE setting and drives both the
// write side (sequence allocation) and the daily counter read model, so
// the counters endpoints always read the store the increments went to.
// Everything else (addresses, audit trail, generation history) always
// lives in Postgres.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	if configs.CounterStore == CounterStoreRedis {
		uowFactory = redisadapter.NewUnitOfWorkFactory(redisClient)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		redisClient:  redisClient,
		counterStore: configs.CounterStore,
		uowFactory:   uowFactory,
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateGenerateOrderIDCommandHandler() commands.GenerateOrderIDCommandHandler {
	var f commands.CounterUoWFactory = FuncCounterUoWFactory(func() commands.CounterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateOrderIDCommandHandler(
		f,
		addressrepo.NewGormAddressRepository(c.gormDB),
		auditrepo.NewGormAuditRepository(c.gormDB),
		services.NewGeoResolver(city.DefaultTable()),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetDailyCountersQueryHandler() queries.DailyCountersReader {
	if c.counterStore == CounterStoreRedis {
		return queries.NewCounterStoreGetDailyCountersQueryHandler(
			rediscounterrepo.NewRedisCounterRepository(c.redisClient),
			city.DefaultTable(),
		)
	}
	return queries.NewGetDailyCountersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentGenerationsQueryHandler() queries.GetRecentGenerationsQueryHandler {
	return queries.NewGetRecentGenerationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDailyCountersQueryHandler(), c.logger)
}

type FuncCounterUoWFactory func() commands.CounterUoW

func (f FuncCounterUoWFactory) Create() commands.CounterUoW {
	return f()
}
