package handlers

import (
	"net/http"

	request "printshop_ops/internal/adapter/http/dto/request"
	response "printshop_ops/internal/adapter/http/dto/response"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// UpdateProjectStage godoc
// @Summary      Move a project stage to a new status
// @Description  Stage timestamps are derived server side and the project status is re-derived from its stages.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID"
// @Param        stage_id path string true "Stage ID"
// @Param        body body request.StatusUpdateRequest true "New stage status"
// @Success      200 {object} response.ProjectResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /projects/{project_id}/stages/{stage_id} [patch]
func (h *ProjectHandler) UpdateProjectStage(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	project, err := h.usecase.UpdateProjectStage(
		c.Request.Context(),
		c.Param("project_id"),
		c.Param("stage_id"),
		entities.StageStatus(payload.ResolveStatus()),
	)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}
