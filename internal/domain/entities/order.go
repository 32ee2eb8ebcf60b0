package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusReady        OrderStatus = "ready"
	OrderStatusCompleted    OrderStatus = "completed"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProduction, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Active reports whether the order still counts as open work.
func (s OrderStatus) Active() bool {
	return s != OrderStatusCompleted && s != OrderStatusCancelled
}

type OrderPriority string

const (
	OrderPriorityRush   OrderPriority = "rush"
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityNormal OrderPriority = "normal"
)

// Order is a production order, usually created by quote conversion.
type Order struct {
	ID              string        `json:"id"`
	Number          string        `json:"number"`
	CustomerID      string        `json:"customer_id"`
	CustomerName    string        `json:"customer_name"`
	Status          OrderStatus   `json:"status"`
	QuoteID         string        `json:"quote_id,omitempty"`
	PONumber        string        `json:"po_number,omitempty"`
	Priority        OrderPriority `json:"priority"`
	PromisedDate    *time.Time    `json:"promised_date,omitempty"`
	DepositRequired float64       `json:"deposit_required"`
	DepositReceived float64       `json:"deposit_received"`
	TotalAmount     float64       `json:"total_amount"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
