package entities

import "time"

// QuoteStatus represents the lifecycle of a priced proposal.
//
// Domain notes:
//   - Quotes are created outside the engines (seed data / intake).
//   - Conversion marks the quote accepted and links the created order.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

type FulfillmentType string

const (
	FulfillmentPrint   FulfillmentType = "print"
	FulfillmentInstall FulfillmentType = "install"
	FulfillmentDesign  FulfillmentType = "design"
)

type QuoteItem struct {
	ID              string          `json:"id"`
	Product         string          `json:"product"`
	FulfillmentType FulfillmentType `json:"fulfillment_type"`
	Quantity        int             `json:"quantity"`
	UnitPrice       float64         `json:"unit_price"`
	DiscountPct     *float64        `json:"discount_pct,omitempty"`
	TaxRate         *float64        `json:"tax_rate,omitempty"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Quote is a priced proposal sent to a customer.
//
// Monetary representation:
//   - TotalAmount is a snapshot taken when the quote was priced; engines never
//     recompute it from Items.
type Quote struct {
	ID               string      `json:"id"`
	Number           string      `json:"number"`
	CustomerID       string      `json:"customer_id"`
	CustomerName     string      `json:"customer_name"`
	Status           QuoteStatus `json:"status"`
	ValidFrom        time.Time   `json:"valid_from"`
	ValidUntil       time.Time   `json:"valid_until"`
	Subtotal         float64     `json:"subtotal"`
	DiscountAmount   float64     `json:"discount_amount"`
	TaxAmount        float64     `json:"tax_amount"`
	TotalAmount      float64     `json:"total_amount"`
	DepositRequired  float64     `json:"deposit_required"`
	DepositReceived  float64     `json:"deposit_received"`
	CreatedAt        time.Time   `json:"created_at"`
	Owner            string      `json:"owner"`
	Items            []QuoteItem `json:"items"`
	ConvertedOrderID string      `json:"converted_order_id,omitempty"`
}

// FirstDueDate returns the due date of the first item carrying one, in item
// order. It is not the earliest date.
func (q Quote) FirstDueDate() *time.Time {
	for _, it := range q.Items {
		if it.DueDate != nil {
			d := *it.DueDate
			return &d
		}
	}
	return nil
}

func (q Quote) HasFulfillment(ft FulfillmentType) bool {
	for _, it := range q.Items {
		if it.FulfillmentType == ft {
			return true
		}
	}
	return false
}

func (q Quote) DepositCovered() bool {
	return q.DepositReceived >= q.DepositRequired
}

func (q Quote) Converted() bool {
	return q.ConvertedOrderID != ""
}
