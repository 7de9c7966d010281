package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/lalamove"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/settingsrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	logger       *slog.Logger
	uowFactory   postgres.GormUnitOfWorkFactory
	settingsRepo *settingsrepo.GormStoreSettingsRepository
	courier      *lalamove.Client
	dispatcher   *jobs.CourierDispatcher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		logger:       logger,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		settingsRepo: settingsrepo.NewGormStoreSettingsRepository(gormDB),
		courier: lalamove.NewClient(lalamove.Config{
			APIKey:            config.LalamoveAPIKey,
			APISecret:         config.LalamoveAPISecret,
			Timeout:           config.LalamoveTimeout,
			SandboxBaseURL:    config.LalamoveSandboxURL,
			ProductionBaseURL: config.LalamoveProductionURL,
		}, logger),
	}

	dispatchHandler := c.CreateDispatchCourierCommandHandler()
	c.dispatcher = jobs.NewCourierDispatcher(
		&dispatchHandler,
		config.DispatchWorkers,
		config.DispatchQueueSize,
		config.DispatchTimeout,
		logger,
	)

	return c
}

func (c *CompositionRoot) StoreSettingsRepository() *settingsrepo.GormStoreSettingsRepository {
	return c.settingsRepo
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateRequestQuoteCommandHandler() commands.RequestQuoteCommandHandler {
	return commands.NewRequestQuoteCommandHandler(c.settingsRepo, c.courier, c.logger)
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	return commands.NewCreateDeliveryOrderCommandHandler(c.settingsRepo, c.courier, c.logger, nil)
}

func (c *CompositionRoot) CreateDispatchCourierCommandHandler() commands.DispatchCourierCommandHandler {
	creator := c.CreateCreateDeliveryOrderCommandHandler()
	return commands.NewDispatchCourierCommandHandler(c.orderUoWFactory(), &creator, c.logger)
}

func (c *CompositionRoot) CreateSyncCourierStatusesCommandHandler() commands.SyncCourierStatusesCommandHandler {
	return commands.NewSyncCourierStatusesCommandHandler(c.orderUoWFactory(), c.settingsRepo, c.courier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwaitingCourierOrdersQueryHandler() queries.GetAwaitingCourierOrdersQueryHandler {
	return queries.NewGetAwaitingCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	syncHandler := c.CreateSyncCourierStatusesCommandHandler()
	syncJob := jobs.NewCourierStatusSyncJob(
		&syncHandler,
		c.config.CourierSyncSchedule,
		c.config.CourierSyncTimeout,
		c.logger,
	)
	return jobs.NewJobManager(c.dispatcher, syncJob)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	requestQuote := c.CreateRequestQuoteCommandHandler()
	createDeliveryOrder := c.CreateCreateDeliveryOrderCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	dispatchCourier := c.CreateDispatchCourierCommandHandler()
	getOrder := c.CreateGetOrderQueryHandler()
	getAwaiting := c.CreateGetAwaitingCourierOrdersQueryHandler()

	return httpin.NewServer(httpin.Handlers{
		RequestQuote:             &requestQuote,
		CreateDeliveryOrder:      &createDeliveryOrder,
		CreateOrder:              &createOrder,
		ChangeOrderStatus:        &changeOrderStatus,
		DispatchCourier:          &dispatchCourier,
		GetOrder:                 getOrder,
		GetAwaitingCourierOrders: getAwaiting,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
