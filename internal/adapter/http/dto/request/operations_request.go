package request

import "strings"

// StatusUpdateRequest is the body of every PATCH .../status endpoint.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}

type ApprovalDecisionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (r ApprovalDecisionRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}

// ResolveNotes drops blank notes so they do not overwrite existing ones.
func (r ApprovalDecisionRequest) ResolveNotes() *string {
	if r.Notes == nil {
		return nil
	}
	v := strings.TrimSpace(*r.Notes)
	if v == "" {
		return nil
	}
	return &v
}

// PaymentRequest records a manual payment. Amount is a pointer so that an
// explicit zero passes binding and is rejected by the engine instead.
type PaymentRequest struct {
	Amount    *float64 `json:"amount" binding:"required"`
	Method    string   `json:"method" binding:"required"`
	Reference string   `json:"reference"`
}

func (r PaymentRequest) ResolveMethod() string {
	return strings.ToLower(strings.TrimSpace(r.Method))
}

func (r PaymentRequest) ResolveReference() string {
	return strings.TrimSpace(r.Reference)
}
