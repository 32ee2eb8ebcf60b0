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

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// UpdateTaskStatus godoc
// @Summary  Change a task's status
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    task_id path string true "Task ID"
// @Param    body body request.StatusUpdateRequest true "New status, e.g. \"In Progress\""
// @Success  200 {object} entities.Task
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /tasks/{task_id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	task, err := h.usecase.UpdateTaskStatus(c.Request.Context(), c.Param("task_id"), entities.TaskStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, mapTaskError(err))
		return
	}
	c.JSON(http.StatusOK, task)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidTaskStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
