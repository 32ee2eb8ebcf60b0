package metrics

import (
	"context"
	"time"

	"printshop_ops/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const collectTimeout = 2 * time.Second

// OperationsCollector exposes the dashboard figures as gauges. Values are
// recomputed from the store on every scrape.
type OperationsCollector struct {
	source usecase.IMetricsUseCase
	log    *zap.Logger

	conversionRate     *prometheus.Desc
	onTimeRate         *prometheus.Desc
	outstandingBalance *prometheus.Desc
	overdueInvoices    *prometheus.Desc
	pendingApprovals   *prometheus.Desc
	revisionRequests   *prometheus.Desc
	estimatedProfit    *prometheus.Desc
	activeOrders       *prometheus.Desc
	activeProjects     *prometheus.Desc
	lowStockItems      *prometheus.Desc
	projectProgress    *prometheus.Desc
	scrapeErrors       prometheus.Counter
}

var _ prometheus.Collector = (*OperationsCollector)(nil)

func NewOperationsCollector(source usecase.IMetricsUseCase, logger *zap.Logger) *OperationsCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "ops", name), help, labels, nil)
	}
	return &OperationsCollector{
		source:             source,
		log:                logger,
		conversionRate:     desc("conversion_rate_percent", "Orders per lead, percent."),
		onTimeRate:         desc("on_time_delivery_rate_percent", "Projects completed by their due date, percent."),
		outstandingBalance: desc("outstanding_balance", "Sum of invoice balances due."),
		overdueInvoices:    desc("overdue_invoices", "Invoices overdue or past due with a balance."),
		pendingApprovals:   desc("pending_approvals", "Approvals awaiting a decision."),
		revisionRequests:   desc("revision_requests", "Approvals in revision_required."),
		estimatedProfit:    desc("estimated_profit", "Accepted quote revenue minus the assumed cost ratio."),
		activeOrders:       desc("active_orders", "Orders neither completed nor cancelled."),
		activeProjects:     desc("active_projects", "Projects neither delivered nor closed."),
		lowStockItems:      desc("low_stock_items", "Inventory items low or out of stock."),
		projectProgress:    desc("project_progress_percent", "Completed stages per project, percent.", "project_id"),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ops",
			Name:      "scrape_errors_total",
			Help:      "Metric recomputations that failed.",
		}),
	}
}

func (c *OperationsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs() {
		ch <- d
	}
	c.scrapeErrors.Describe(ch)
}

func (c *OperationsCollector) Collect(ch chan<- prometheus.Metric) {
	defer c.scrapeErrors.Collect(ch)

	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	m, err := c.source.Compute(ctx)
	if err != nil {
		c.scrapeErrors.Inc()
		c.log.Warn("[metrics][collector] compute failed", zap.Error(err))
		return
	}

	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, labels...)
	}
	gauge(c.conversionRate, float64(m.ConversionRate))
	gauge(c.onTimeRate, float64(m.OnTimeDeliveryRate))
	gauge(c.outstandingBalance, m.OutstandingBalance)
	gauge(c.overdueInvoices, float64(m.OverdueInvoices))
	gauge(c.pendingApprovals, float64(m.PendingApprovals))
	gauge(c.revisionRequests, float64(m.RevisionCount))
	gauge(c.estimatedProfit, m.EstimatedProfit)
	gauge(c.activeOrders, float64(m.ActiveOrders))
	gauge(c.activeProjects, float64(m.ActiveProjects))
	gauge(c.lowStockItems, float64(m.LowStockItems))
	for _, p := range m.ProjectProgress {
		gauge(c.projectProgress, float64(p.Progress), p.ProjectID)
	}
}

func (c *OperationsCollector) descs() []*prometheus.Desc {
	return []*prometheus.Desc{
		c.conversionRate, c.onTimeRate, c.outstandingBalance, c.overdueInvoices,
		c.pendingApprovals, c.revisionRequests, c.estimatedProfit, c.activeOrders,
		c.activeProjects, c.lowStockItems, c.projectProgress,
	}
}
