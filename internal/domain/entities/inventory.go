package entities

import "time"

type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in_stock"
	InventoryStatusLow        InventoryStatus = "low"
	InventoryStatusOutOfStock InventoryStatus = "out_of_stock"
)

// InventoryItem is seed-only; no engine mutates it.
type InventoryItem struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	StockOnHand  int             `json:"stock_on_hand"`
	ReorderPoint int             `json:"reorder_point"`
	Status       InventoryStatus `json:"status"`
	Vendor       string          `json:"vendor"`
}

// PortalMilestone is a customer-facing checklist item, informational only.
type PortalMilestone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
