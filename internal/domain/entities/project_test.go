package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func pipeline(statuses ...StageStatus) []ProjectStage {
	stages := DefaultStageTemplates()
	for i, s := range statuses {
		stages[i].Status = s
	}
	return stages
}

func TestDeriveProjectStatus(t *testing.T) {
	cases := []struct {
		name    string
		stages  []ProjectStage
		current ProjectStatus
		want    ProjectStatus
	}{
		{"no stages at creation", nil, "", ProjectStatusPlanning},
		{"no stages keeps current", nil, ProjectStatusQC, ProjectStatusQC},
		{"all completed", pipeline(StageStatusCompleted, StageStatusCompleted, StageStatusCompleted), ProjectStatusQC, ProjectStatusReady},
		{"designer in progress", pipeline(StageStatusInProgress), "", ProjectStatusDesign},
		{"production in progress", pipeline(StageStatusCompleted, StageStatusInProgress), ProjectStatusDesign, ProjectStatusProduction},
		{"qc in progress", pipeline(StageStatusCompleted, StageStatusCompleted, StageStatusInProgress), ProjectStatusProduction, ProjectStatusQC},
		{"creation with design done", pipeline(StageStatusCompleted), "", ProjectStatusProduction},
		{"creation all pending", pipeline(), "", ProjectStatusPlanning},
		{"blocked keeps current", pipeline(StageStatusCompleted, StageStatusBlocked), ProjectStatusProduction, ProjectStatusProduction},
		{
			"first in progress stage wins",
			[]ProjectStage{
				{Status: StageStatusInProgress, OwnerRole: RoleQC},
				{Status: StageStatusInProgress, OwnerRole: RoleDesigner},
			},
			ProjectStatusPlanning,
			ProjectStatusQC,
		},
		{"manager role maps to production", []ProjectStage{{Status: StageStatusInProgress, OwnerRole: RoleManager}}, "", ProjectStatusProduction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveProjectStatus(tc.stages, tc.current))
		})
	}
}

func TestProjectStage_Transition(t *testing.T) {
	t.Run("start derives due from sla", func(t *testing.T) {
		s := ProjectStage{SLAHours: 48, Status: StageStatusPending}
		s.Transition(StageStatusInProgress, now)

		require.NotNil(t, s.StartedAt)
		require.NotNil(t, s.DueAt)
		assert.Equal(t, now, *s.StartedAt)
		assert.Equal(t, now.Add(48*time.Hour), *s.DueAt)
		assert.Nil(t, s.CompletedAt)
	})

	t.Run("existing timestamps are kept", func(t *testing.T) {
		started := now.Add(-72 * time.Hour)
		due := now.Add(-24 * time.Hour)
		s := ProjectStage{SLAHours: 48, Status: StageStatusInProgress, StartedAt: TimePtr(started), DueAt: TimePtr(due)}
		s.Transition(StageStatusCompleted, now)

		assert.Equal(t, started, *s.StartedAt)
		assert.Equal(t, due, *s.DueAt)
		require.NotNil(t, s.CompletedAt)
		assert.Equal(t, now, *s.CompletedAt)
	})

	t.Run("pending leaves timestamps unset", func(t *testing.T) {
		s := ProjectStage{SLAHours: 24}
		s.Transition(StageStatusPending, now)
		assert.Nil(t, s.StartedAt)
		assert.Nil(t, s.DueAt)
		assert.Equal(t, StageStatusPending, s.Status)
	})

	t.Run("blocked stamps start", func(t *testing.T) {
		s := ProjectStage{SLAHours: 24}
		s.Transition(StageStatusBlocked, now)
		require.NotNil(t, s.StartedAt)
		assert.Nil(t, s.CompletedAt)
	})
}

func TestProject_ProgressAndOnTime(t *testing.T) {
	p := Project{Stages: pipeline(StageStatusCompleted, StageStatusInProgress)}
	assert.Equal(t, 33, p.Progress())
	assert.Equal(t, 144, p.TotalSLAHours())
	assert.Equal(t, 0, Project{}.Progress())

	_, ok := p.OnTime()
	assert.False(t, ok)

	p.DueDate = TimePtr(now)
	p.CompletionDate = TimePtr(now)
	onTime, ok := p.OnTime()
	assert.True(t, ok)
	assert.True(t, onTime, "completion on the due date counts as on time")

	p.CompletionDate = TimePtr(now.Add(time.Hour))
	onTime, _ = p.OnTime()
	assert.False(t, onTime)
}
