package entities

import "time"

// ProjectStatus is derived from the project's stages; see DeriveProjectStatus.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusDesign     ProjectStatus = "design"
	ProjectStatusProduction ProjectStatus = "production"
	ProjectStatusQC         ProjectStatus = "qc"
	ProjectStatusReady      ProjectStatus = "ready"
	ProjectStatusDelivered  ProjectStatus = "delivered"
	ProjectStatusClosed     ProjectStatus = "closed"
)

// Active reports whether the project still counts as live work.
func (s ProjectStatus) Active() bool {
	return s != ProjectStatusDelivered && s != ProjectStatusClosed
}

type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
	StageStatusBlocked    StageStatus = "blocked"
)

func (s StageStatus) Valid() bool {
	switch s {
	case StageStatusPending, StageStatusInProgress, StageStatusCompleted, StageStatusBlocked:
		return true
	}
	return false
}

type OwnerRole string

const (
	RoleSales      OwnerRole = "Sales"
	RoleDesigner   OwnerRole = "Designer"
	RoleProduction OwnerRole = "Production"
	RoleQC         OwnerRole = "QC"
	RoleManager    OwnerRole = "Manager"
)

// ProjectStage is one step of a project's pipeline.
//
// Invariants:
//   - DueAt is computed once (StartedAt + SLAHours) and never recomputed.
//   - StartedAt is never cleared or moved once set.
//   - CompletedAt is written only when the stage becomes completed.
type ProjectStage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      StageStatus `json:"status"`
	OwnerRole   OwnerRole   `json:"owner_role"`
	SLAHours    int         `json:"sla_hours"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	DueAt       *time.Time  `json:"due_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	TemplateID  string      `json:"template_id,omitempty"`
}

func (s ProjectStage) SLA() time.Duration {
	return time.Duration(s.SLAHours) * time.Hour
}

// Transition moves the stage to status, deriving its timestamps from now.
func (s *ProjectStage) Transition(status StageStatus, now time.Time) {
	if s.StartedAt == nil && status != StageStatusPending {
		s.StartedAt = TimePtr(now)
	}
	if s.DueAt == nil && status != StageStatusPending {
		s.DueAt = TimePtr(s.StartedAt.Add(s.SLA()))
	}
	if status == StageStatusCompleted {
		s.CompletedAt = TimePtr(now)
	}
	if status == StageStatusBlocked && s.StartedAt == nil {
		s.StartedAt = TimePtr(now)
	}
	s.Status = status
}

// Project is the production execution unit of an order.
type Project struct {
	ID             string         `json:"id"`
	Code           string         `json:"code"`
	OrderID        string         `json:"order_id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Status         ProjectStatus  `json:"status"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	BudgetHours    float64        `json:"budget_hours"`
	ActualHours    float64        `json:"actual_hours"`
	Stages         []ProjectStage `json:"stages"`
}

// Stage returns a pointer into p.Stages, or nil.
func (p *Project) Stage(id string) *ProjectStage {
	for i := range p.Stages {
		if p.Stages[i].ID == id {
			return &p.Stages[i]
		}
	}
	return nil
}

// RefreshStatus re-derives the project status from its stages.
func (p *Project) RefreshStatus() {
	p.Status = DeriveProjectStatus(p.Stages, p.Status)
}

// Progress is the percentage of completed stages, rounded.
func (p Project) Progress() int {
	if len(p.Stages) == 0 {
		return 0
	}
	done := 0
	for _, s := range p.Stages {
		if s.Status == StageStatusCompleted {
			done++
		}
	}
	return Percent(done, len(p.Stages))
}

func (p Project) TotalSLAHours() int {
	total := 0
	for _, s := range p.Stages {
		total += s.SLAHours
	}
	return total
}

// OnTime reports whether the project finished by its due date. ok is false when
// either date is missing.
func (p Project) OnTime() (onTime bool, ok bool) {
	if p.CompletionDate == nil || p.DueDate == nil {
		return false, false
	}
	return !p.CompletionDate.After(*p.DueDate), true
}

// DeriveProjectStatus computes a project status from its stages. current is the
// project's existing status, or "" for a project being created.
//
// Precedence:
//  1. every stage completed -> ready
//  2. first in_progress stage decides by owner role
//  3. at creation: first stage completed -> production, else planning
//  4. otherwise current is kept
func DeriveProjectStatus(stages []ProjectStage, current ProjectStatus) ProjectStatus {
	if len(stages) == 0 {
		if current == "" {
			return ProjectStatusPlanning
		}
		return current
	}

	allDone := true
	for _, s := range stages {
		if s.Status != StageStatusCompleted {
			allDone = false
			break
		}
	}
	if allDone {
		return ProjectStatusReady
	}

	for _, s := range stages {
		if s.Status == StageStatusInProgress {
			return statusForRole(s.OwnerRole)
		}
	}

	if current == "" {
		if stages[0].Status == StageStatusCompleted {
			return ProjectStatusProduction
		}
		return ProjectStatusPlanning
	}
	return current
}

func statusForRole(role OwnerRole) ProjectStatus {
	switch role {
	case RoleDesigner:
		return ProjectStatusDesign
	case RoleProduction:
		return ProjectStatusProduction
	case RoleQC:
		return ProjectStatusQC
	default:
		return ProjectStatusProduction
	}
}
