package routes

import (
	"printshop_ops/internal/adapter/http/handlers"
	"printshop_ops/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Quote    *handlers.QuoteHandler
	Order    *handlers.OrderHandler
	Project  *handlers.ProjectHandler
	Task     *handlers.TaskHandler
	Approval *handlers.ApprovalHandler
	Invoice  *handlers.InvoiceHandler
	Report   *handlers.ReportHandler
}

// NewRouter builds the engine. reg receives the HTTP metrics and is served
// at /metrics.
func NewRouter(h Handlers, reg *prometheus.Registry, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, metrics.NewHTTPMetrics(reg), logger)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, h)
	addProductionRoutes(v1, h)
	addBillingRoutes(v1, h)
	addReportRoutes(v1, h)

	return router
}
