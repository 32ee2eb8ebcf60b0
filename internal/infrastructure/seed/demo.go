package seed

import (
	"context"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"
)

// DemoSeed is the built-in dashboard dataset. Dates are relative to the day
// the dataset is loaded, so the demo never ages.
type DemoSeed struct {
	now func() time.Time
}

var _ interfaces.ISeedSource = (*DemoSeed)(nil)

func NewDemoSeed(now func() time.Time) *DemoSeed {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &DemoSeed{now: now}
}

func (s *DemoSeed) Load(ctx context.Context) (entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return entities.Dataset{}, err
	}
	return DemoDataset(s.now()), nil
}

func floatPtr(f float64) *float64 { return &f }

// DemoDataset builds the demo records around the UTC day of now.
func DemoDataset(now time.Time) entities.Dataset {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return today.AddDate(0, 0, days) }
	ptr := func(days int) *time.Time { return entities.TimePtr(at(days)) }

	return entities.Dataset{
		Leads: []entities.Lead{
			{
				ID: "lead-001", Name: "Mark Rivera", Company: "Rivera Events",
				Email: "mark@riveraevents.com", Phone: "+63 917 555 0123",
				Status: entities.LeadStatusContacted, Source: "Facebook Ads", ExpectedClose: ptr(7),
				Owner: "Aira (Sales)", Value: 45000,
				Notes: "Needs rush tarpaulin and backdrop for weekend event.",
			},
			{
				ID: "lead-002", Name: "Lara Santos", Company: "Santos Fitness",
				Email: "lara@santosfitness.ph", Phone: "+63 918 444 9987",
				Status: entities.LeadStatusQuoted, Source: "Walk-in", ExpectedClose: ptr(3),
				Owner: "Ben (Sales)", Value: 82000,
				Notes: "Expansion signage package pending approval.",
			},
			{
				ID: "lead-003", Name: "Jude Tan", Company: "Tan Tech",
				Email: "jude@tantech.io", Phone: "+63 926 671 2211",
				Status: entities.LeadStatusNew, Source: "Referral", ExpectedClose: ptr(14),
				Owner: "Aira (Sales)", Value: 30000,
			},
		},
		Quotes: []entities.Quote{
			{
				ID: "quote-001", Number: "QT-2025-0011", CustomerID: "cust-001", CustomerName: "Rivera Events",
				Status: entities.QuoteStatusSent, ValidFrom: at(0), ValidUntil: at(14),
				Subtotal: 48000, DiscountAmount: 3000, TaxAmount: 5760, TotalAmount: 50760,
				DepositRequired: 20000, DepositReceived: 10000, CreatedAt: at(0), Owner: "Aira (Sales)",
				Items: []entities.QuoteItem{
					{ID: "qi-001", Product: "12ft Stage Backdrop", FulfillmentType: entities.FulfillmentPrint, Quantity: 1,
						UnitPrice: 18000, DiscountPct: floatPtr(5), TaxRate: floatPtr(12), DueDate: ptr(10)},
					{ID: "qi-002", Product: "4x6m Tarpaulin", FulfillmentType: entities.FulfillmentPrint, Quantity: 2,
						UnitPrice: 7500, TaxRate: floatPtr(12), DueDate: ptr(8)},
				},
			},
			{
				ID: "quote-002", Number: "QT-2025-0012", CustomerID: "cust-002", CustomerName: "Santos Fitness",
				Status: entities.QuoteStatusAccepted, ValidFrom: at(0), ValidUntil: at(10),
				Subtotal: 90000, TaxAmount: 10800, TotalAmount: 100800,
				DepositRequired: 40000, DepositReceived: 40000, CreatedAt: at(0), Owner: "Ben (Sales)",
				Items: []entities.QuoteItem{
					{ID: "qi-003", Product: "Lighted Acrylic Signage", FulfillmentType: entities.FulfillmentInstall, Quantity: 1,
						UnitPrice: 60000, TaxRate: floatPtr(12), DueDate: ptr(21)},
					{ID: "qi-004", Product: "Interior Wall Graphics", FulfillmentType: entities.FulfillmentDesign, Quantity: 1,
						UnitPrice: 30000, TaxRate: floatPtr(12), Notes: "Includes three design revisions."},
				},
			},
		},
		Orders: []entities.Order{
			{
				ID: "order-001", Number: "SO-2025-0041", CustomerID: "cust-002", CustomerName: "Santos Fitness",
				Status: entities.OrderStatusInProduction, QuoteID: "quote-002", PONumber: "SF-PO-1022",
				Priority: entities.OrderPriorityHigh, PromisedDate: ptr(25),
				DepositRequired: 40000, DepositReceived: 40000, TotalAmount: 100800,
				CreatedAt: at(0), UpdatedAt: at(0),
			},
		},
		Projects: []entities.Project{
			{
				ID: "project-001", Code: "PR-2025-030", OrderID: "order-001",
				Name: "Santos Fitness Signage Rollout", Type: "Signage", Status: entities.ProjectStatusProduction,
				StartDate: ptr(-6), DueDate: ptr(7), BudgetHours: 120, ActualHours: 46,
				Stages: []entities.ProjectStage{
					{ID: "stage-001", Name: "Design", Status: entities.StageStatusCompleted, OwnerRole: entities.RoleDesigner,
						SLAHours: 48, StartedAt: ptr(-5), CompletedAt: ptr(-2)},
					{ID: "stage-002", Name: "Production", Status: entities.StageStatusInProgress, OwnerRole: entities.RoleProduction,
						SLAHours: 72, StartedAt: ptr(-2), DueAt: ptr(3)},
					{ID: "stage-003", Name: "QC & Handover", Status: entities.StageStatusPending, OwnerRole: entities.RoleQC,
						SLAHours: 24},
				},
			},
		},
		Tasks: []entities.Task{
			{ID: "task-001", ProjectID: "project-001", StageID: "stage-002", Title: "Prepare acrylic panels",
				Assignee: "Jon (Production)", Role: entities.RoleProduction, Status: entities.TaskStatusInProgress,
				DueAt: ptr(2), EstimatedHours: 12, ActualHours: 6},
			{ID: "task-002", ProjectID: "project-001", StageID: "stage-002", Title: "Print wall graphics",
				Assignee: "Mae (Production)", Role: entities.RoleProduction, Status: entities.TaskStatusNotStarted,
				DueAt: ptr(1), EstimatedHours: 10},
			{ID: "task-003", ProjectID: "project-001", StageID: "stage-003", Title: "Schedule QC walk-through",
				Assignee: "Ivy (QC)", Role: entities.RoleQC, Status: entities.TaskStatusBlocked,
				Notes: "Awaiting production completion", EstimatedHours: 3},
		},
		Approvals: []entities.Approval{
			{ID: "approval-001", ProjectID: "project-001", Version: 2, Status: entities.ApprovalStatusPending,
				RequestedAt: at(-1), DueAt: ptr(1), Reviewer: "Lara Santos",
				AssetURL: "https://cdn.example.com/mockups/santos-fitness-v2.pdf",
				Notes:    "Client requested brighter lighting in revision 1."},
		},
		Invoices: []entities.Invoice{
			{
				ID: "inv-001", OrderID: "order-001", Number: "INV-2025-0081", Status: entities.InvoiceStatusIssued,
				IssueDate: at(0), DueDate: ptr(15), TotalAmount: 100800, BalanceDue: 60800,
				Payments: []entities.Payment{
					{ID: "pay-001", InvoiceID: "inv-001", Amount: 40000, Method: entities.PaymentMethodBankTransfer,
						Date: at(-1), Reference: "UBP-45891"},
				},
			},
		},
		Inventory: []entities.InventoryItem{
			{ID: "inv-item-001", SKU: "TARP-13OZ", Name: "Tarpaulin 13oz (Roll)", Unit: "roll",
				StockOnHand: 18, ReorderPoint: 10, Status: entities.InventoryStatusInStock, Vendor: "WideFormat Supply Co."},
			{ID: "inv-item-002", SKU: "INK-CMYK-SET", Name: "CMYK Ink Set", Unit: "set",
				StockOnHand: 3, ReorderPoint: 5, Status: entities.InventoryStatusLow, Vendor: "ColorLab Philippines"},
		},
		PortalMilestones: []entities.PortalMilestone{
			{ID: "portal-001", Name: "Approve Design Mockups"},
			{ID: "portal-002", Name: "Submit Jersey Sizes", Completed: true, CompletedAt: ptr(-1)},
			{ID: "portal-003", Name: "Pay Remaining Balance"},
		},
	}
}
