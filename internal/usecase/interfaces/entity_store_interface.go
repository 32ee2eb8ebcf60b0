package interfaces

import (
	"context"
	"printshop_ops/internal/domain/entities"
)

// IEntityStore owns every operations collection.
//
// Engines mutate only inside Update. The callback receives a private working
// copy; it is committed when fn returns nil and discarded otherwise, so a
// multi-record operation such as quote conversion is all-or-nothing.
// View hands fn a snapshot that later updates never touch.

type IEntityStore interface {
	View(ctx context.Context, fn func(entities.Dataset) error) error
	Update(ctx context.Context, fn func(*entities.Dataset) error) error
}
