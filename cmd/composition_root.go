package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/redisqueue"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	shipmentRepo  *shipmentrepo.GormShipmentRepository
	shipmentQueue *redisqueue.RedisShipmentQueue
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		shipmentRepo: shipmentrepo.NewGormShipmentRepository(gormDB),
		shipmentQueue: redisqueue.NewRedisShipmentQueue(
			redisClient,
			configs.RedisQueueStream,
			configs.RedisQueueGroup,
			configs.RedisQueueConsumer,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentRepo, c.shipmentQueue)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.CreateCreateShipmentCommandHandler())
}

func (c *CompositionRoot) CreateProcessShipmentCommandHandler() commands.ProcessShipmentCommandHandler {
	return commands.NewProcessShipmentCommandHandler(c.shipmentRepo)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShippingMethodsQueryHandler() queries.ListShippingMethodsQueryHandler {
	return queries.NewListShippingMethodsQueryHandler()
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.shipmentQueue, c.CreateProcessShipmentCommandHandler(), c.logger)
}
