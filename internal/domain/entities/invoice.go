package entities

import "time"

// InvoiceStatus represents the billing document lifecycle.
//
// Only the payment engine flips an invoice to paid; overdue is set externally
// and is also inferred by the metrics when a balance outlives its due date.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusIssued  InvoiceStatus = "issued"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodCard         PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodGCash, PaymentMethodCard:
		return true
	}
	return false
}

// Payment is an append-only record of funds applied to one invoice.
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Date      time.Time     `json:"date"`
	Reference string        `json:"reference,omitempty"`
}

type Invoice struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id"`
	Number      string        `json:"number"`
	Status      InvoiceStatus `json:"status"`
	IssueDate   time.Time     `json:"issue_date"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	TotalAmount float64       `json:"total_amount"`
	BalanceDue  float64       `json:"balance_due"`
	Payments    []Payment     `json:"payments"`
}

// ApplyPayment appends p and lowers the balance, floored at zero. Overpayment is
// absorbed. The invoice becomes paid only when the floored balance is zero.
func (inv *Invoice) ApplyPayment(p Payment) {
	p.InvoiceID = inv.ID
	inv.Payments = append(inv.Payments, p)
	inv.BalanceDue -= p.Amount
	if inv.BalanceDue < 0 {
		inv.BalanceDue = 0
	}
	if inv.BalanceDue == 0 {
		inv.Status = InvoiceStatusPaid
	}
}

// Overdue reports an explicitly overdue invoice or an open balance past its due date.
func (inv Invoice) Overdue(now time.Time) bool {
	if inv.Status == InvoiceStatusOverdue {
		return true
	}
	return inv.BalanceDue > 0 && inv.DueDate != nil && inv.DueDate.Before(now)
}
