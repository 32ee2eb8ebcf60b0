package handlers

import (
	"net/http"

	"printshop_ops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IMetricsUseCase
}

func NewReportHandler(uc usecase.IMetricsUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetMetrics godoc
// @Summary  Operations dashboard metrics
// @Tags     reports
// @Produce  json
// @Success  200 {object} usecase.OperationsMetrics
// @Router   /reports/metrics [get]
func (h *ReportHandler) GetMetrics(c *gin.Context) {
	m, err := h.usecase.Compute(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, m)
}
