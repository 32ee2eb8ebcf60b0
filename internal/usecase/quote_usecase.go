package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrQuoteAlreadyConverted = errors.New("quote already converted")
)

// Document number prefixes.
const (
	OrderNumberPrefix   = "SO"
	ProjectNumberPrefix = "PR"
	InvoiceNumberPrefix = "INV"
)

// IQuoteUseCase turns accepted work into production records.
//
//   - ConvertQuoteToOrder creates the order, project (stages + tasks) and invoice
//     for a quote in one atomic store update.
//   - UpdateQuoteStatus sets the quote status with no transition guard.

type IQuoteUseCase interface {
	ConvertQuoteToOrder(ctx context.Context, quoteID string) (entities.ConversionResult, error)
	UpdateQuoteStatus(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	store       interfaces.IEntityStore
	ids         interfaces.IIDAllocator
	log         *zap.Logger
	now         func() time.Time
	templates   []entities.ProjectStage
	taskCatalog []entities.Task
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store interfaces.IEntityStore, ids interfaces.IIDAllocator, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		store:       store,
		ids:         ids,
		log:         loggerOrNop(logger),
		now:         utcNow,
		templates:   entities.DefaultStageTemplates(),
		taskCatalog: entities.DefaultTaskCatalog(),
	}
}

func (u *QuoteUseCase) ConvertQuoteToOrder(ctx context.Context, quoteID string) (entities.ConversionResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ConversionResult{}, ErrInvalidQuoteID
	}
	u.log.Info("[quote][usecase] convert start", zap.String("quote_id", quoteID))

	var result entities.ConversionResult
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		quote := ds.Quote(quoteID)
		if quote == nil {
			return ErrQuoteNotFound
		}
		if quote.Converted() {
			return fmt.Errorf("%w: order %s", ErrQuoteAlreadyConverted, quote.ConvertedOrderID)
		}

		now := u.now()
		promised := quote.FirstDueDate()

		order := entities.Order{
			ID:              u.ids.NewID("order"),
			Number:          u.ids.NextNumber(OrderNumberPrefix, now),
			CustomerID:      quote.CustomerID,
			CustomerName:    quote.CustomerName,
			Status:          entities.OrderStatusPending,
			QuoteID:         quote.ID,
			Priority:        entities.OrderPriorityNormal,
			PromisedDate:    promised,
			DepositRequired: quote.DepositRequired,
			DepositReceived: quote.DepositReceived,
			TotalAmount:     quote.TotalAmount,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		stages := u.cloneStages(quote.Status == entities.QuoteStatusAccepted, now)
		project := entities.Project{
			ID:          u.ids.NewID("project"),
			Code:        u.ids.NextNumber(ProjectNumberPrefix, now),
			OrderID:     order.ID,
			Name:        quote.CustomerName + " Job",
			Type:        projectType(*quote),
			Status:      entities.DeriveProjectStatus(stages, ""),
			StartDate:   entities.TimePtr(now),
			DueDate:     promised,
			BudgetHours: float64(len(quote.Items) * entities.BudgetHoursPerItem),
			ActualHours: 0,
			Stages:      stages,
		}

		tasks := u.cloneTasks(project)
		invoice := u.newInvoice(*quote, order.ID, now)

		quote.Status = entities.QuoteStatusAccepted
		quote.ConvertedOrderID = order.ID

		ds.Orders = prepend(ds.Orders, order)
		ds.Projects = prepend(ds.Projects, project)
		ds.Tasks = prepend(ds.Tasks, tasks...)
		ds.Invoices = prepend(ds.Invoices, invoice)

		result = entities.ConversionResult{
			Quote:   *quote,
			Order:   order,
			Project: project,
			Tasks:   tasks,
			Invoice: invoice,
		}
		return nil
	})
	if err != nil {
		u.log.Warn("[quote][usecase] convert failed", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.ConversionResult{}, err
	}

	u.log.Info("[quote][usecase] convert success",
		zap.String("quote_id", quoteID),
		zap.String("order_number", result.Order.Number),
		zap.String("project_status", string(result.Project.Status)),
		zap.String("invoice_status", string(result.Invoice.Status)),
		zap.Float64("balance_due", result.Invoice.BalanceDue),
	)
	return result, nil
}

// cloneStages instantiates the stage templates. The design stage starts
// immediately, or is already done when the customer accepted the quote.
func (u *QuoteUseCase) cloneStages(accepted bool, now time.Time) []entities.ProjectStage {
	stages := make([]entities.ProjectStage, len(u.templates))
	for i, tpl := range u.templates {
		stages[i] = entities.ProjectStage{
			ID:         u.ids.NewID("stage"),
			Name:       tpl.Name,
			Status:     entities.StageStatusPending,
			OwnerRole:  tpl.OwnerRole,
			SLAHours:   tpl.SLAHours,
			TemplateID: tpl.ID,
		}
		if tpl.Name != entities.DesignStageName {
			continue
		}
		if accepted {
			stages[i].Transition(entities.StageStatusCompleted, now)
		} else {
			stages[i].Transition(entities.StageStatusInProgress, now)
		}
	}
	return stages
}

func (u *QuoteUseCase) cloneTasks(project entities.Project) []entities.Task {
	tasks := make([]entities.Task, 0, len(u.taskCatalog))
	for _, tpl := range u.taskCatalog {
		stage := stageForTemplate(project.Stages, tpl.StageID)
		task := tpl
		task.ID = u.ids.NewID("task")
		task.ProjectID = project.ID
		task.Status = entities.TaskStatusNotStarted
		task.ActualHours = 0
		task.DueAt = nil
		if stage != nil {
			task.StageID = stage.ID
			if stage.DueAt != nil {
				task.DueAt = entities.TimePtr(*stage.DueAt)
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// stageForTemplate resolves a catalog stage reference, falling back to the first stage.
func stageForTemplate(stages []entities.ProjectStage, templateID string) *entities.ProjectStage {
	for i := range stages {
		if stages[i].TemplateID == templateID {
			return &stages[i]
		}
	}
	if len(stages) > 0 {
		return &stages[0]
	}
	return nil
}

func (u *QuoteUseCase) newInvoice(quote entities.Quote, orderID string, now time.Time) entities.Invoice {
	status := entities.InvoiceStatusDraft
	if quote.DepositCovered() {
		status = entities.InvoiceStatusIssued
	}
	inv := entities.Invoice{
		ID:          u.ids.NewID("invoice"),
		OrderID:     orderID,
		Number:      u.ids.NextNumber(InvoiceNumberPrefix, now),
		Status:      status,
		IssueDate:   now,
		DueDate:     entities.TimePtr(quote.ValidUntil),
		TotalAmount: quote.TotalAmount,
		BalanceDue:  quote.TotalAmount - quote.DepositReceived,
		Payments:    []entities.Payment{},
	}
	if quote.DepositReceived > 0 {
		// The deposit instrument is unknown at conversion time.
		inv.Payments = append(inv.Payments, entities.Payment{
			ID:        u.ids.NewID("pay"),
			InvoiceID: inv.ID,
			Amount:    quote.DepositReceived,
			Method:    entities.PaymentMethodBankTransfer,
			Date:      now,
		})
	}
	return inv
}

func projectType(q entities.Quote) string {
	if q.HasFulfillment(entities.FulfillmentInstall) {
		return "Installation"
	}
	return "Print"
}

func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	var updated entities.Quote
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		quote := ds.Quote(quoteID)
		if quote == nil {
			return ErrQuoteNotFound
		}
		quote.Status = status
		updated = *quote
		return nil
	})
	if err != nil {
		u.log.Warn("[quote][usecase] update status failed", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] status updated", zap.String("quote_id", quoteID), zap.String("status", string(status)))
	return updated, nil
}
