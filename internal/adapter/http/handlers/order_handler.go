package handlers

import (
	"errors"
	"net/http"

	request "printshop_ops/internal/adapter/http/dto/request"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase"
	"printshop_ops/pkg"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// UpdateOrderStatus godoc
// @Summary      Change a sales order's status
// @Description  Completing an order marks its projects ready.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id path string true "Order ID"
// @Param        body body request.StatusUpdateRequest true "New status"
// @Success      200 {object} entities.Order
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("order_id"), entities.OrderStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
