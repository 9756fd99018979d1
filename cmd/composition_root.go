package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/geocache"
	"courier/internal/adapters/out/kafka"
	"courier/internal/adapters/out/locationiq"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/pricing"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/jobs"
)

// CompositionRoot wires adapters into use cases. One instance lives for the
// whole process; the Create* methods hand out cheap per-request values.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	table      *tariff.Table
	geocoder   ports.Geocoder
	publisher  ports.OrderEventPublisher
	closers    []func() error
}

// NewCompositionRoot builds the object graph from the given configuration and
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		table:      tariff.DefaultTable(),
	}

	if err := root.buildGeocoder(); err != nil {
		return nil, err
	}
	if err := root.buildPublisher(); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *CompositionRoot) buildGeocoder() error {
	client, err := locationiq.NewClient(c.config.LocationIQBaseURL, c.config.LocationIQAPIKey)
	if err != nil {
		return err
	}
	c.geocoder = client

	if !c.config.RedisEnabled() {
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
	})
	c.closers = append(c.closers, redisClient.Close)

	cached, err := geocache.NewCachingGeocoder(client, redisClient, c.config.GeocacheTTL, c.logger)
	if err != nil {
		return err
	}
	c.geocoder = cached
	return nil
}

func (c *CompositionRoot) buildPublisher() error {
	if !c.config.KafkaEnabled() {
		c.logger.Warn("no kafka brokers configured, order events are discarded")
		c.publisher = kafka.NoopPublisher{}
		return nil
	}

	publisher, err := kafka.NewPublisher(c.config.KafkaBrokers, c.config.KafkaOrderEventsTopic, c.logger)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
	return nil
}

// Close releases every long-lived connection the root opened.
func (c *CompositionRoot) Close() {
	for _, close := range c.closers {
		if err := close(); err != nil {
			c.logger.Warn("failed to close resource", "error", err)
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.fullUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, services.DefaultPayoutPolicy)
}

func (c *CompositionRoot) CreateGetLateOrdersQueryHandler() queries.GetLateOrdersQueryHandler {
	return queries.NewGetLateOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOnlineDriversQueryHandler() queries.GetOnlineDriversQueryHandler {
	return queries.NewGetOnlineDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSuggestAddressesQueryHandler() queries.SuggestAddressesQueryHandler {
	return queries.NewSuggestAddressesQueryHandler(c.table, c.geocoder, c.logger)
}

// CreatePricingSession builds a quote session for one order draft.
func (c *CompositionRoot) CreatePricingSession() *pricing.Session {
	return pricing.NewSession(c.table, c.geocoder, c.logger, c.config.PricingDebounce)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.uowFactory,
		c.geocoder,
		c.table,
		c.CreateGetLateOrdersQueryHandler(),
		c.publisher,
		c.logger,
	)
}

// CreateHTTPServer assembles the API server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateDispatchOrderCommandHandler(),
		c.CreatePickUpOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetLateOrdersQueryHandler(),
		c.CreateGetOnlineDriversQueryHandler(),
		c.CreateSuggestAddressesQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
