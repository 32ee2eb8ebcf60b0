package entities

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending          ApprovalStatus = "pending"
	ApprovalStatusApproved         ApprovalStatus = "approved"
	ApprovalStatusRevisionRequired ApprovalStatus = "revision_required"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRevisionRequired:
		return true
	}
	return false
}

// RevisionWindow is how far a revision request pushes the approval due date.
const RevisionWindow = 48 * time.Hour

// Approval is one design-review iteration of a project.
// Version is set by whoever opens the iteration; the engine never bumps it.
type Approval struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Version     int            `json:"version"`
	Status      ApprovalStatus `json:"status"`
	RequestedAt time.Time      `json:"requested_at"`
	DueAt       *time.Time     `json:"due_at,omitempty"`
	Reviewer    string         `json:"reviewer"`
	AssetURL    string         `json:"asset_url"`
	Notes       string         `json:"notes,omitempty"`
}
