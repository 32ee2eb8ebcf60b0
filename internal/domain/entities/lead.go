package entities

import "time"

// LeadStatus tracks a prospect through the sales pipeline.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusQuoted     LeadStatus = "quoted"
	LeadStatusClosedWon  LeadStatus = "closed_won"
	LeadStatusClosedLost LeadStatus = "closed_lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

// Lead is a prospect record. Leads come from seed data and are never deleted.
type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Company       string     `json:"company"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Status        LeadStatus `json:"status"`
	Source        string     `json:"source,omitempty"`
	ExpectedClose *time.Time `json:"expected_close,omitempty"`
	Owner         string     `json:"owner"`
	Value         float64    `json:"value"`
	Notes         string     `json:"notes,omitempty"`
}
