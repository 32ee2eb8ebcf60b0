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

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// RecordApprovalDecision godoc
// @Summary      Record a client decision on a design approval
// @Description  approved completes the project's design stages. revision_required reopens the review window.
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        approval_id path string true "Approval ID"
// @Param        body body request.ApprovalDecisionRequest true "Decision"
// @Success      200 {object} entities.Approval
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /approvals/{approval_id}/decision [patch]
func (h *ApprovalHandler) RecordApprovalDecision(c *gin.Context) {
	var payload request.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	approval, err := h.usecase.RecordApprovalDecision(
		c.Request.Context(),
		c.Param("approval_id"),
		entities.ApprovalStatus(payload.ResolveStatus()),
		payload.ResolveNotes(),
	)
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, approval)
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApprovalID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidApprovalStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
