package entities

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

// Task is a unit of work bound to exactly one project and one of its stages.
type Task struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"project_id"`
	StageID        string     `json:"stage_id"`
	Title          string     `json:"title"`
	Assignee       string     `json:"assignee"`
	Role           OwnerRole  `json:"role"`
	Status         TaskStatus `json:"status"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	Notes          string     `json:"notes,omitempty"`
}
