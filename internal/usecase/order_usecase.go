package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// IOrderUseCase updates order status. Completing an order marks every project
// of the order ready.

type IOrderUseCase interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	store interfaces.IEntityStore
	log   *zap.Logger
	now   func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IEntityStore, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{store: store, log: loggerOrNop(logger), now: utcNow}
}

func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	var (
		updated  entities.Order
		cascaded int
	)
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		order := ds.Order(orderID)
		if order == nil {
			return ErrOrderNotFound
		}
		now := u.now()
		order.Status = status
		order.UpdatedAt = now

		if status == entities.OrderStatusCompleted {
			for i := range ds.Projects {
				if ds.Projects[i].OrderID != orderID {
					continue
				}
				ds.Projects[i].Status = entities.ProjectStatusReady
				ds.Projects[i].CompletionDate = entities.TimePtr(now)
				cascaded++
			}
		}
		updated = *order
		return nil
	})
	if err != nil {
		u.log.Warn("[order][usecase] update status failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.Order{}, err
	}
	u.log.Info("[order][usecase] status updated",
		zap.String("order_id", orderID), zap.String("status", string(status)), zap.Int("projects_ready", cascaded))
	return updated, nil
}
