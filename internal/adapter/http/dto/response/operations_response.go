package response

import "printshop_ops/internal/domain/entities"

// ListResponse wraps a collection. Items is never null in JSON.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

type ProjectResponse struct {
	entities.Project
	Progress int `json:"progress"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{Project: p, Progress: p.Progress()}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type InvoiceResponse struct {
	entities.Invoice
	PaidAmount float64 `json:"paid_amount"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	paid := 0.0
	for _, p := range inv.Payments {
		paid += p.Amount
	}
	if inv.Payments == nil {
		inv.Payments = []entities.Payment{}
	}
	return InvoiceResponse{Invoice: inv, PaidAmount: paid}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}

// ConversionResponse is returned by quote conversion.
type ConversionResponse struct {
	Quote   entities.Quote  `json:"quote"`
	Order   entities.Order  `json:"order"`
	Project ProjectResponse `json:"project"`
	Tasks   []entities.Task `json:"tasks"`
	Invoice InvoiceResponse `json:"invoice"`
}

func FromConversion(r entities.ConversionResult) ConversionResponse {
	tasks := r.Tasks
	if tasks == nil {
		tasks = []entities.Task{}
	}
	return ConversionResponse{
		Quote:   r.Quote,
		Order:   r.Order,
		Project: FromProject(r.Project),
		Tasks:   tasks,
		Invoice: FromInvoice(r.Invoice),
	}
}
