package routes

import "github.com/gin-gonic/gin"

const (
	PathLeads            = "/leads"
	PathQuotes           = "/quotes"
	PathOrders           = "/orders"
	PathProjects         = "/projects"
	PathTasks            = "/tasks"
	PathApprovals        = "/approvals"
	PathInvoices         = "/invoices"
	PathInventory        = "/inventory"
	PathPortalMilestones = "/portal-milestones"
	PathReports          = "/reports"
)

func addSalesRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathLeads, h.Catalog.ListLeads)

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.Catalog.ListQuotes)
		quotes.PATCH("/:quote_id/status", h.Quote.UpdateQuoteStatus)
		quotes.POST("/:quote_id/convert", h.Quote.ConvertQuote)
	}
}

func addProductionRoutes(rg *gin.RouterGroup, h Handlers) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Catalog.ListOrders)
		orders.PATCH("/:order_id/status", h.Order.UpdateOrderStatus)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.Catalog.ListProjects)
		projects.GET("/:project_id", h.Catalog.GetProject)
		projects.PATCH("/:project_id/stages/:stage_id", h.Project.UpdateProjectStage)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.GET("", h.Catalog.ListTasks)
		tasks.PATCH("/:task_id/status", h.Task.UpdateTaskStatus)
	}

	approvals := rg.Group(PathApprovals)
	{
		approvals.GET("", h.Catalog.ListApprovals)
		approvals.PATCH("/:approval_id/decision", h.Approval.RecordApprovalDecision)
	}

	rg.GET(PathInventory, h.Catalog.ListInventory)
	rg.GET(PathPortalMilestones, h.Catalog.ListPortalMilestones)
}

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.Catalog.ListInvoices)
		invoices.POST("/:invoice_id/payments", h.Invoice.RecordPayment)
		invoices.POST("/:invoice_id/payments/capture", h.Invoice.CapturePayment)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h Handlers) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/metrics", h.Report.GetMetrics)
	}
}
