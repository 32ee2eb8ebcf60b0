package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/infrastructure/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteUseCase(t *testing.T, ds entities.Dataset) (*QuoteUseCase, func() entities.Dataset) {
	t.Helper()
	store := newTestStore(t, ds)
	uc := NewQuoteUseCase(store, idgen.NewSequenceAllocator(), nil)
	uc.now = fixedClock
	return uc, func() entities.Dataset { return snapshotOf(t, store) }
}

func TestQuoteUseCase_ConvertQuoteToOrder_AcceptedQuote(t *testing.T) {
	uc, snapshot := newQuoteUseCase(t, baseDataset())

	res, err := uc.ConvertQuoteToOrder(context.Background(), "quote-002")
	require.NoError(t, err)

	t.Run("order", func(t *testing.T) {
		o := res.Order
		assert.Equal(t, entities.OrderStatusPending, o.Status)
		assert.Equal(t, "SO-261015-10", o.Number)
		assert.Equal(t, "quote-002", o.QuoteID)
		assert.Equal(t, entities.OrderPriorityNormal, o.Priority)
		assert.Equal(t, 100800.0, o.TotalAmount)
		assert.Equal(t, 40000.0, o.DepositRequired)
		assert.Equal(t, 40000.0, o.DepositReceived)
		require.NotNil(t, o.PromisedDate)
		assert.Equal(t, day(14), *o.PromisedDate, "first item with a due date wins, not the earliest")
		assert.Equal(t, fixedNow, o.CreatedAt)
	})

	t.Run("project and stages", func(t *testing.T) {
		p := res.Project
		assert.Equal(t, entities.ProjectStatusProduction, p.Status)
		assert.Equal(t, "PR-261015-10", p.Code)
		assert.Equal(t, res.Order.ID, p.OrderID)
		assert.Equal(t, "Harbor Foods Job", p.Name)
		assert.Equal(t, "Installation", p.Type)
		assert.Equal(t, 60.0, p.BudgetHours)
		assert.Zero(t, p.ActualHours)
		require.NotNil(t, p.StartDate)
		assert.Equal(t, fixedNow, *p.StartDate)
		assert.Equal(t, day(14), *p.DueDate)

		require.Len(t, p.Stages, 3)
		design := p.Stages[0]
		assert.Equal(t, entities.StageStatusCompleted, design.Status)
		assert.Equal(t, entities.TemplateStageDesign, design.TemplateID)
		assert.Equal(t, fixedNow, *design.StartedAt)
		assert.Equal(t, fixedNow, *design.CompletedAt)
		assert.Equal(t, fixedNow.Add(48*time.Hour), *design.DueAt)

		for _, s := range p.Stages[1:] {
			assert.Equal(t, entities.StageStatusPending, s.Status)
			assert.Nil(t, s.StartedAt)
			assert.Nil(t, s.DueAt)
			assert.Nil(t, s.CompletedAt)
		}
		assert.Equal(t, entities.TemplateStageProduction, p.Stages[1].TemplateID)
		assert.Equal(t, entities.TemplateStageQC, p.Stages[2].TemplateID)
		assert.NotEqual(t, p.Stages[0].ID, p.Stages[1].ID)
	})

	t.Run("tasks", func(t *testing.T) {
		require.Len(t, res.Tasks, 2)
		for _, task := range res.Tasks {
			assert.Equal(t, res.Project.ID, task.ProjectID)
			assert.Equal(t, entities.TaskStatusNotStarted, task.Status)
			assert.Zero(t, task.ActualHours)
		}
		assert.Equal(t, res.Project.Stages[0].ID, res.Tasks[0].StageID)
		assert.Equal(t, res.Project.Stages[0].DueAt, res.Tasks[0].DueAt)
		assert.Equal(t, res.Project.Stages[1].ID, res.Tasks[1].StageID)
		assert.Nil(t, res.Tasks[1].DueAt, "pending stage has no due date to inherit")
	})

	t.Run("invoice", func(t *testing.T) {
		inv := res.Invoice
		assert.Equal(t, entities.InvoiceStatusIssued, inv.Status)
		assert.Equal(t, 60800.0, inv.BalanceDue)
		assert.Equal(t, 100800.0, inv.TotalAmount)
		assert.Equal(t, "INV-261015-10", inv.Number)
		assert.Equal(t, day(20), *inv.DueDate)
		require.Len(t, inv.Payments, 1)
		assert.Equal(t, 40000.0, inv.Payments[0].Amount)
		assert.Equal(t, entities.PaymentMethodBankTransfer, inv.Payments[0].Method)
		assert.Equal(t, fixedNow, inv.Payments[0].Date)
		assert.Equal(t, inv.ID, inv.Payments[0].InvoiceID)
	})

	t.Run("store", func(t *testing.T) {
		ds := snapshot()
		require.Len(t, ds.Orders, 2)
		assert.Equal(t, res.Order.ID, ds.Orders[0].ID, "new order is prepended")
		require.Len(t, ds.Tasks, 3)
		assert.Equal(t, res.Tasks[0].ID, ds.Tasks[0].ID)
		assert.Equal(t, res.Tasks[1].ID, ds.Tasks[1].ID)
		assert.Equal(t, "task-existing", ds.Tasks[2].ID)
		assert.Len(t, ds.Projects, 1)
		assert.Len(t, ds.Invoices, 1)

		q := ds.Quote("quote-002")
		require.NotNil(t, q)
		assert.Equal(t, entities.QuoteStatusAccepted, q.Status)
		assert.Equal(t, res.Order.ID, q.ConvertedOrderID)
	})
}

func TestQuoteUseCase_ConvertQuoteToOrder_SentQuote(t *testing.T) {
	uc, snapshot := newQuoteUseCase(t, baseDataset())

	res, err := uc.ConvertQuoteToOrder(context.Background(), "quote-001")
	require.NoError(t, err)

	design := res.Project.Stages[0]
	assert.Equal(t, entities.StageStatusInProgress, design.Status)
	assert.Equal(t, fixedNow, *design.StartedAt)
	assert.Equal(t, fixedNow.Add(48*time.Hour), *design.DueAt)
	assert.Nil(t, design.CompletedAt)

	assert.Equal(t, entities.ProjectStatusDesign, res.Project.Status)
	assert.Equal(t, "Print", res.Project.Type)
	assert.Equal(t, 20.0, res.Project.BudgetHours)
	assert.Nil(t, res.Order.PromisedDate)
	assert.Nil(t, res.Project.DueDate)

	assert.Equal(t, entities.InvoiceStatusDraft, res.Invoice.Status)
	assert.Equal(t, 25000.0, res.Invoice.BalanceDue)
	assert.Empty(t, res.Invoice.Payments)

	assert.Equal(t, entities.QuoteStatusAccepted, res.Quote.Status)
	ds := snapshot()
	assert.Equal(t, entities.QuoteStatusAccepted, ds.Quote("quote-001").Status)
}

func TestQuoteUseCase_ConvertQuoteToOrder_Errors(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, baseDataset())
		_, err := uc.ConvertQuoteToOrder(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("unknown quote leaves store untouched", func(t *testing.T) {
		uc, snapshot := newQuoteUseCase(t, baseDataset())
		_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-404")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
		if n := len(snapshot().Orders); n != 1 {
			t.Fatalf("expected 1 order, got %d", n)
		}
	})

	t.Run("second conversion is rejected", func(t *testing.T) {
		uc, snapshot := newQuoteUseCase(t, baseDataset())
		first, err := uc.ConvertQuoteToOrder(context.Background(), "quote-002")
		require.NoError(t, err)

		_, err = uc.ConvertQuoteToOrder(context.Background(), "quote-002")
		if !errors.Is(err, ErrQuoteAlreadyConverted) {
			t.Fatalf("expected ErrQuoteAlreadyConverted, got %v", err)
		}
		ds := snapshot()
		assert.Len(t, ds.Orders, 2)
		assert.Len(t, ds.Projects, 1)
		assert.Len(t, ds.Invoices, 1)
		assert.Equal(t, first.Order.ID, ds.Quote("quote-002").ConvertedOrderID)
	})
}

func TestQuoteUseCase_ConvertQuoteToOrder_Logs(t *testing.T) {
	logger, logs := newObservedLogger()
	uc := NewQuoteUseCase(newTestStore(t, baseDataset()), idgen.NewSequenceAllocator(), logger)
	uc.now = fixedClock

	_, err := uc.ConvertQuoteToOrder(context.Background(), "quote-002")
	require.NoError(t, err)

	entries := logs.FilterMessage("[quote][usecase] convert success").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "quote-002", fields["quote_id"])
	assert.Equal(t, "issued", fields["invoice_status"])
	assert.Equal(t, 60800.0, fields["balance_due"])
}

func TestQuoteUseCase_UpdateQuoteStatus(t *testing.T) {
	t.Run("sets status", func(t *testing.T) {
		uc, snapshot := newQuoteUseCase(t, baseDataset())
		q, err := uc.UpdateQuoteStatus(context.Background(), "quote-001", entities.QuoteStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusRejected, q.Status)
		ds := snapshot()
		assert.Equal(t, entities.QuoteStatusRejected, ds.Quote("quote-001").Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, baseDataset())
		_, err := uc.UpdateQuoteStatus(context.Background(), "quote-001", "won")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, baseDataset())
		_, err := uc.UpdateQuoteStatus(context.Background(), "quote-404", entities.QuoteStatusSent)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
