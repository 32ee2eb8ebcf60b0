package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "printshop_ops/docs" // swag generated
	"printshop_ops/internal/adapter/http/handlers"
	"printshop_ops/internal/adapter/persistence/repository"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/infrastructure/config"
	"printshop_ops/internal/infrastructure/database"
	"printshop_ops/internal/infrastructure/idgen"
	"printshop_ops/internal/infrastructure/metrics"
	"printshop_ops/internal/infrastructure/payments"
	"printshop_ops/internal/infrastructure/seed"
	"printshop_ops/internal/usecase"
	"printshop_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Run boots the service and blocks serving HTTP.
func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()
	source, err := seedSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	ds, err := loadDataset(ctx, source, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := NewRouter(buildHandlers(cfg, repository.NewMemoryStore(ds), reg, logger), reg, logger)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	logger.Info("[bootstrap] listening", zap.String("addr", addr))
	return router.Run(addr)
}

func seedSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.ISeedSource, error) {
	switch cfg.Seed.Source {
	case config.SeedSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		logger.Info("[bootstrap] seeding from dynamodb", zap.String("table", cfg.Seed.Table))
		return repository.NewSeedDynamoRepository(ddb, cfg.Seed.Table), nil
	default:
		return seed.NewDemoSeed(nil), nil
	}
}

func loadDataset(ctx context.Context, source interfaces.ISeedSource, logger *zap.Logger) (entities.Dataset, error) {
	ds, err := source.Load(ctx)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("load seed: %w", err)
	}
	logger.Info("[bootstrap] seed loaded",
		zap.Int("quotes", len(ds.Quotes)),
		zap.Int("orders", len(ds.Orders)),
		zap.Int("projects", len(ds.Projects)),
	)
	return ds, nil
}

func buildHandlers(cfg *config.Config, store interfaces.IEntityStore, reg prometheus.Registerer, logger *zap.Logger) Handlers {
	ids := idgen.NewUUIDAllocator()

	mockPayments := cfg.PaymentsMockEnabled()
	var gateway interfaces.IPaymentGateway
	if mockPayments {
		logger.Info("[bootstrap] payment gateway mock mode enabled")
	} else if mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, logger); err != nil {
		logger.Warn("[bootstrap] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	metricsUseCase := usecase.NewMetricsUseCase(store)
	reg.MustRegister(metrics.NewOperationsCollector(metricsUseCase, logger))

	return Handlers{
		Catalog:  handlers.NewCatalogHandler(usecase.NewSnapshotUseCase(store)),
		Quote:    handlers.NewQuoteHandler(usecase.NewQuoteUseCase(store, ids, logger), logger),
		Order:    handlers.NewOrderHandler(usecase.NewOrderUseCase(store, logger)),
		Project:  handlers.NewProjectHandler(usecase.NewProjectUseCase(store, logger)),
		Task:     handlers.NewTaskHandler(usecase.NewTaskUseCase(store, logger)),
		Approval: handlers.NewApprovalHandler(usecase.NewApprovalUseCase(store, logger)),
		Invoice:  handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(store, ids, gateway, mockPayments, logger), logger),
		Report:   handlers.NewReportHandler(metricsUseCase),
	}
}
