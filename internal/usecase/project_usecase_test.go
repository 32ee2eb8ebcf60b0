package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printshop_ops/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagedProject() entities.Project {
	return entities.Project{
		ID:     "project-001",
		Code:   "PR-261001-11",
		Status: entities.ProjectStatusPlanning,
		Stages: []entities.ProjectStage{
			{ID: "stage-001", Name: "Design", Status: entities.StageStatusPending, OwnerRole: entities.RoleDesigner, SLAHours: 48},
			{ID: "stage-002", Name: "Production", Status: entities.StageStatusPending, OwnerRole: entities.RoleProduction, SLAHours: 72},
			{ID: "stage-003", Name: "QC & Handover", Status: entities.StageStatusPending, OwnerRole: entities.RoleQC, SLAHours: 24},
		},
	}
}

func newProjectUseCase(t *testing.T, projects ...entities.Project) *ProjectUseCase {
	t.Helper()
	ds := baseDataset()
	ds.Projects = projects
	uc := NewProjectUseCase(newTestStore(t, ds), nil)
	uc.now = fixedClock
	return uc
}

func TestProjectUseCase_UpdateProjectStage(t *testing.T) {
	t.Run("in progress derives due date from sla", func(t *testing.T) {
		uc := newProjectUseCase(t, stagedProject())

		p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-002", entities.StageStatusInProgress)
		require.NoError(t, err)

		s := p.Stage("stage-002")
		require.NotNil(t, s.StartedAt)
		assert.Equal(t, fixedNow, *s.StartedAt)
		assert.Equal(t, s.StartedAt.Add(72*time.Hour), *s.DueAt)
		assert.Nil(t, s.CompletedAt)
		assert.Equal(t, entities.ProjectStatusProduction, p.Status)
		require.NotNil(t, p.StartDate)
		assert.Equal(t, fixedNow, *p.StartDate)
	})

	t.Run("started at and due at are never moved", func(t *testing.T) {
		uc := newProjectUseCase(t, stagedProject())
		first, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-001", entities.StageStatusInProgress)
		require.NoError(t, err)
		started := *first.Stage("stage-001").StartedAt
		due := *first.Stage("stage-001").DueAt

		later := fixedNow.Add(5 * time.Hour)
		uc.now = func() time.Time { return later }
		for _, st := range []entities.StageStatus{entities.StageStatusBlocked, entities.StageStatusPending, entities.StageStatusCompleted} {
			p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-001", st)
			require.NoError(t, err)
			s := p.Stage("stage-001")
			assert.Equal(t, started, *s.StartedAt, "status %s", st)
			assert.Equal(t, due, *s.DueAt, "status %s", st)
			assert.Equal(t, st, s.Status)
		}

		p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-001", entities.StageStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, later, *p.Stage("stage-001").CompletedAt)
	})

	t.Run("pending on untouched stage sets no timestamps", func(t *testing.T) {
		uc := newProjectUseCase(t, stagedProject())
		p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-003", entities.StageStatusPending)
		require.NoError(t, err)
		s := p.Stage("stage-003")
		assert.Nil(t, s.StartedAt)
		assert.Nil(t, s.DueAt)
		assert.Equal(t, entities.ProjectStatusPlanning, p.Status, "no stage in progress keeps the prior status")
	})

	t.Run("blocked stage gets a start marker", func(t *testing.T) {
		uc := newProjectUseCase(t, stagedProject())
		p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-003", entities.StageStatusBlocked)
		require.NoError(t, err)
		s := p.Stage("stage-003")
		assert.Equal(t, fixedNow, *s.StartedAt)
		assert.Equal(t, fixedNow.Add(24*time.Hour), *s.DueAt)
	})

	t.Run("all completed makes project ready", func(t *testing.T) {
		uc := newProjectUseCase(t, stagedProject())
		var p entities.Project
		var err error
		for _, id := range []string{"stage-001", "stage-002", "stage-003"} {
			p, err = uc.UpdateProjectStage(context.Background(), "project-001", id, entities.StageStatusCompleted)
			require.NoError(t, err)
		}
		assert.Equal(t, entities.ProjectStatusReady, p.Status)
		assert.Equal(t, 100, p.Progress())
	})

	t.Run("start date is kept when already set", func(t *testing.T) {
		proj := stagedProject()
		proj.StartDate = entities.TimePtr(day(-3))
		uc := newProjectUseCase(t, proj)
		p, err := uc.UpdateProjectStage(context.Background(), "project-001", "stage-001", entities.StageStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, day(-3), *p.StartDate)
		assert.Equal(t, entities.ProjectStatusDesign, p.Status)
	})
}

func TestProjectUseCase_UpdateProjectStage_Errors(t *testing.T) {
	cases := []struct {
		name      string
		projectID string
		stageID   string
		status    entities.StageStatus
		want      error
	}{
		{"empty project id", " ", "stage-001", entities.StageStatusCompleted, ErrInvalidProjectID},
		{"empty stage id", "project-001", "", entities.StageStatusCompleted, ErrInvalidStageID},
		{"invalid status", "project-001", "stage-001", "done", ErrInvalidStageStatus},
		{"unknown project", "project-404", "stage-001", entities.StageStatusCompleted, ErrProjectNotFound},
		{"unknown stage", "project-001", "stage-404", entities.StageStatusCompleted, ErrStageNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newProjectUseCase(t, stagedProject())
			_, err := uc.UpdateProjectStage(context.Background(), tc.projectID, tc.stageID, tc.status)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
