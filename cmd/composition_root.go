package cmd

import (
	"io"
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/kafka/orderevents"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"
	"grubdash/internal/seed"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// eventPublisher is an order event publisher that holds connections.
type eventPublisher interface {
	ports.OrderEventPublisher
	io.Closer
}

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	db         *memory.Database
	uowFactory *memory.MemoryUnitOfWorkFactory
	ids        kernel.IDGenerator
	publisher  eventPublisher
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	db := memory.NewDatabase()

	var publisher eventPublisher = orderevents.NoopPublisher{}
	if config.KafkaHost != "" {
		publisher = orderevents.NewKafkaPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		db:         db,
		uowFactory: memory.NewMemoryUnitOfWorkFactory(db),
		ids:        kernel.NewUUIDGenerator(),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.ids, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.db.OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.db.OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.db.OrderRepository())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderStatusSummaryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter(doc *openapi3.T) *echo.Echo {
	return httpin.NewRouter(c.CreateServer(), doc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderStatusSummaryQueryHandler(), c.config.StatsSchedule, c.logger)
}

func (c *CompositionRoot) CreateOrderSeeder() *seed.OrderSeeder {
	return seed.NewOrderSeeder(c.CreateCreateOrderCommandHandler(), c.logger)
}

// Close releases the connections held by the root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
