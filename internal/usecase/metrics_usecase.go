package usecase

import (
	"context"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"
)

// CostRatio is the assumed share of revenue spent on production.
const CostRatio = 0.65

// ProjectProgress is the per-project stage completion shown on the dashboard.
type ProjectProgress struct {
	ProjectID string                 `json:"project_id"`
	Code      string                 `json:"code"`
	Name      string                 `json:"name"`
	Status    entities.ProjectStatus `json:"status"`
	Progress  int                    `json:"progress"`
}

// OperationsMetrics is recomputed from the store on every call; nothing here is cached.
type OperationsMetrics struct {
	GeneratedAt        time.Time         `json:"generated_at"`
	Leads              int               `json:"leads"`
	Orders             int               `json:"orders"`
	ConversionRate     int               `json:"conversion_rate"`
	OnTimeDeliveries   int               `json:"on_time_deliveries"`
	OnTimeEligible     int               `json:"on_time_eligible"`
	OnTimeDeliveryRate int               `json:"on_time_delivery_rate"`
	OutstandingBalance float64           `json:"outstanding_balance"`
	OverdueInvoices    int               `json:"overdue_invoices"`
	RevisionCount      int               `json:"revision_count"`
	PendingApprovals   int               `json:"pending_approvals"`
	Revenue            float64           `json:"revenue"`
	EstimatedCost      float64           `json:"estimated_cost"`
	EstimatedProfit    float64           `json:"estimated_profit"`
	ActiveOrders       int               `json:"active_orders"`
	ActiveProjects     int               `json:"active_projects"`
	QuotesSent         int               `json:"quotes_sent"`
	OrdersInProduction int               `json:"orders_in_production"`
	ProjectsInQC       int               `json:"projects_in_qc"`
	AverageQuoteValue  float64           `json:"average_quote_value"`
	AverageSLAHours    float64           `json:"average_sla_hours"`
	ProjectsOverBudget int               `json:"projects_over_budget"`
	LowStockItems      int               `json:"low_stock_items"`
	ProjectProgress    []ProjectProgress `json:"project_progress"`
}

type IMetricsUseCase interface {
	Compute(ctx context.Context) (OperationsMetrics, error)
}

type MetricsUseCase struct {
	store interfaces.IEntityStore
	now   func() time.Time
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(store interfaces.IEntityStore) *MetricsUseCase {
	return &MetricsUseCase{store: store, now: utcNow}
}

func (u *MetricsUseCase) Compute(ctx context.Context) (OperationsMetrics, error) {
	var m OperationsMetrics
	err := u.store.View(ctx, func(ds entities.Dataset) error {
		m = ComputeMetrics(ds, u.now())
		return nil
	})
	return m, err
}

// ComputeMetrics derives the dashboard and report figures from ds as of now.
func ComputeMetrics(ds entities.Dataset, now time.Time) OperationsMetrics {
	m := OperationsMetrics{
		GeneratedAt:     now,
		Leads:           len(ds.Leads),
		Orders:          len(ds.Orders),
		ProjectProgress: make([]ProjectProgress, 0, len(ds.Projects)),
	}
	m.ConversionRate = entities.Percent(m.Orders, m.Leads)

	quoteTotal := 0.0
	for _, q := range ds.Quotes {
		quoteTotal += q.TotalAmount
		switch q.Status {
		case entities.QuoteStatusAccepted:
			m.Revenue += q.TotalAmount
		case entities.QuoteStatusSent:
			m.QuotesSent++
		}
	}
	if len(ds.Quotes) > 0 {
		m.AverageQuoteValue = quoteTotal / float64(len(ds.Quotes))
	}
	m.EstimatedCost = m.Revenue * CostRatio
	m.EstimatedProfit = m.Revenue - m.EstimatedCost

	for _, o := range ds.Orders {
		if o.Status.Active() {
			m.ActiveOrders++
		}
		if o.Status == entities.OrderStatusInProduction {
			m.OrdersInProduction++
		}
	}

	slaTotal := 0
	for _, p := range ds.Projects {
		if onTime, ok := p.OnTime(); ok {
			m.OnTimeEligible++
			if onTime {
				m.OnTimeDeliveries++
			}
		}
		if p.Status.Active() {
			m.ActiveProjects++
		}
		if p.Status == entities.ProjectStatusQC {
			m.ProjectsInQC++
		}
		if p.ActualHours > p.BudgetHours {
			m.ProjectsOverBudget++
		}
		slaTotal += p.TotalSLAHours()
		m.ProjectProgress = append(m.ProjectProgress, ProjectProgress{
			ProjectID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Status:    p.Status,
			Progress:  p.Progress(),
		})
	}
	m.OnTimeDeliveryRate = entities.Percent(m.OnTimeDeliveries, m.OnTimeEligible)
	if len(ds.Projects) > 0 {
		m.AverageSLAHours = float64(slaTotal) / float64(len(ds.Projects))
	}

	for _, inv := range ds.Invoices {
		m.OutstandingBalance += inv.BalanceDue
		if inv.Overdue(now) {
			m.OverdueInvoices++
		}
	}

	for _, a := range ds.Approvals {
		switch a.Status {
		case entities.ApprovalStatusRevisionRequired:
			m.RevisionCount++
		case entities.ApprovalStatusPending:
			m.PendingApprovals++
		}
	}

	for _, item := range ds.Inventory {
		if item.Status == entities.InventoryStatusLow || item.Status == entities.InventoryStatusOutOfStock {
			m.LowStockItems++
		}
	}
	return m
}
