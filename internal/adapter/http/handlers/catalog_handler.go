package handlers

import (
	"errors"
	"net/http"

	response "printshop_ops/internal/adapter/http/dto/response"
	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase"
	"printshop_ops/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only collection endpoints from one snapshot
// per request.
type CatalogHandler struct {
	usecase usecase.ISnapshotUseCase
}

func NewCatalogHandler(uc usecase.ISnapshotUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) snapshot(c *gin.Context) (entities.Dataset, bool) {
	ds, err := h.usecase.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return entities.Dataset{}, false
	}
	return ds, true
}

// ListLeads godoc
// @Summary  List leads
// @Tags     sales
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.Lead]
// @Router   /leads [get]
func (h *CatalogHandler) ListLeads(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.Leads))
	}
}

// ListQuotes godoc
// @Summary  List quotes
// @Tags     sales
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.Quote]
// @Router   /quotes [get]
func (h *CatalogHandler) ListQuotes(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.Quotes))
	}
}

// ListOrders godoc
// @Summary  List sales orders
// @Tags     orders
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.Order]
// @Router   /orders [get]
func (h *CatalogHandler) ListOrders(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.Orders))
	}
}

// ListProjects godoc
// @Summary  List projects with stage progress
// @Tags     projects
// @Produce  json
// @Success  200 {object} response.ListResponse[response.ProjectResponse]
// @Router   /projects [get]
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(response.FromProjects(ds.Projects)))
	}
}

// GetProject godoc
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Success  200 {object} response.ProjectResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /projects/{project_id} [get]
func (h *CatalogHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListTasks godoc
// @Summary  List tasks, optionally for one project
// @Tags     tasks
// @Produce  json
// @Param    project_id query string false "Project ID"
// @Success  200 {object} response.ListResponse[entities.Task]
// @Router   /tasks [get]
func (h *CatalogHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListTasks(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(tasks))
}

// ListApprovals godoc
// @Summary  List design approvals
// @Tags     approvals
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.Approval]
// @Router   /approvals [get]
func (h *CatalogHandler) ListApprovals(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.Approvals))
	}
}

// ListInvoices godoc
// @Summary  List invoices
// @Tags     invoices
// @Produce  json
// @Success  200 {object} response.ListResponse[response.InvoiceResponse]
// @Router   /invoices [get]
func (h *CatalogHandler) ListInvoices(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(response.FromInvoices(ds.Invoices)))
	}
}

// ListInventory godoc
// @Summary  List inventory items
// @Tags     inventory
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.InventoryItem]
// @Router   /inventory [get]
func (h *CatalogHandler) ListInventory(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.Inventory))
	}
}

// ListPortalMilestones godoc
// @Summary  List client portal milestones
// @Tags     portal
// @Produce  json
// @Success  200 {object} response.ListResponse[entities.PortalMilestone]
// @Router   /portal-milestones [get]
func (h *CatalogHandler) ListPortalMilestones(c *gin.Context) {
	if ds, ok := h.snapshot(c); ok {
		c.JSON(http.StatusOK, response.NewListResponse(ds.PortalMilestones))
	}
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidStageID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidStageStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
