package handlers

import (
	"errors"
	"net/http"

	request "printshop_ops/internal/adapter/http/dto/request"
	response "printshop_ops/internal/adapter/http/dto/response"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase"
	"printshop_ops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, log: logger}
}

// UpdateQuoteStatus godoc
// @Summary  Change a quote's status
// @Tags     sales
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Param    body body request.StatusUpdateRequest true "New status"
// @Success  200 {object} entities.Quote
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), c.Param("quote_id"), entities.QuoteStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ConvertQuote godoc
// @Summary      Convert a quote into an order, project, tasks and invoice
// @Description  Runs atomically. A quote can be converted once.
// @Tags         sales
// @Produce      json
// @Param        quote_id path string true "Quote ID"
// @Success      201 {object} response.ConversionResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /quotes/{quote_id}/convert [post]
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	h.log.Info("[quote][handler] convert start", zap.String("quote_id", quoteID))

	result, err := h.usecase.ConvertQuoteToOrder(c.Request.Context(), quoteID)
	if err != nil {
		h.log.Warn("[quote][handler] convert failed", zap.String("quote_id", quoteID), zap.Error(err))
		writeError(c, mapQuoteError(err))
		return
	}
	h.log.Info("[quote][handler] convert success",
		zap.String("quote_id", quoteID),
		zap.String("order_number", result.Order.Number),
		zap.String("project_code", result.Project.Code),
	)

	c.JSON(http.StatusCreated, response.FromConversion(result))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote already converted to an order", http.StatusConflict)
	default:
		return internalError(err)
	}
}
