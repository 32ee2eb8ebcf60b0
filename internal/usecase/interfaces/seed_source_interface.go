package interfaces

import (
	"context"
	"printshop_ops/internal/domain/entities"
)

// ISeedSource provides the dataset the entity store starts from.
// Mutations are never written back.

type ISeedSource interface {
	Load(ctx context.Context) (entities.Dataset, error)
}
