package usecase

import (
	"context"
	"testing"
	"time"

	"printshop_ops/internal/adapter/persistence/repository"
	"printshop_ops/internal/domain/entities"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(offset int) time.Time {
	return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func newTestStore(t *testing.T, ds entities.Dataset) *repository.MemoryStore {
	t.Helper()
	return repository.NewMemoryStore(ds)
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

func snapshotOf(t *testing.T, s *repository.MemoryStore) entities.Dataset {
	t.Helper()
	uc := NewSnapshotUseCase(s)
	ds, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return ds
}

// acceptedQuote matches the dashboard's banner job: fully covered deposit.
func acceptedQuote() entities.Quote {
	return entities.Quote{
		ID:              "quote-002",
		Number:          "Q-2026-002",
		CustomerID:      "cust-002",
		CustomerName:    "Harbor Foods",
		Status:          entities.QuoteStatusAccepted,
		ValidFrom:       day(-10),
		ValidUntil:      day(20),
		Subtotal:        90000,
		TaxAmount:       10800,
		TotalAmount:     100800,
		DepositRequired: 40000,
		DepositReceived: 40000,
		CreatedAt:       day(-10),
		Owner:           "Mara",
		Items: []entities.QuoteItem{
			{ID: "qi-1", Product: "Menu boards", FulfillmentType: entities.FulfillmentPrint, Quantity: 4, UnitPrice: 12000},
			{ID: "qi-2", Product: "Window decals", FulfillmentType: entities.FulfillmentInstall, Quantity: 6, UnitPrice: 5000, DueDate: entities.TimePtr(day(14))},
			{ID: "qi-3", Product: "Flyers", FulfillmentType: entities.FulfillmentPrint, Quantity: 500, UnitPrice: 24, DueDate: entities.TimePtr(day(7))},
		},
	}
}

func sentQuote() entities.Quote {
	return entities.Quote{
		ID:              "quote-001",
		Number:          "Q-2026-001",
		CustomerID:      "cust-001",
		CustomerName:    "Northwind Retail",
		Status:          entities.QuoteStatusSent,
		ValidFrom:       day(-2),
		ValidUntil:      day(12),
		TotalAmount:     25000,
		DepositRequired: 5000,
		DepositReceived: 0,
		CreatedAt:       day(-2),
		Items: []entities.QuoteItem{
			{ID: "qi-9", Product: "Banner", FulfillmentType: entities.FulfillmentPrint, Quantity: 1, UnitPrice: 25000},
		},
	}
}

func baseDataset() entities.Dataset {
	return entities.Dataset{
		Leads:     []entities.Lead{{ID: "lead-001", Status: entities.LeadStatusQuoted}, {ID: "lead-002", Status: entities.LeadStatusNew}},
		Quotes:    []entities.Quote{sentQuote(), acceptedQuote()},
		Orders:    []entities.Order{{ID: "order-001", Number: "SO-261001-12", Status: entities.OrderStatusInProduction}},
		Projects:  []entities.Project{},
		Tasks:     []entities.Task{{ID: "task-existing", ProjectID: "project-001", Status: entities.TaskStatusInProgress}},
		Approvals: []entities.Approval{},
		Invoices:  []entities.Invoice{},
	}
}
