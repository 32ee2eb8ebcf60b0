package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrStageNotFound      = errors.New("stage not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidStageID     = errors.New("invalid stage id")
	ErrInvalidStageStatus = errors.New("invalid stage status")
)

// IProjectUseCase advances project stages and re-derives the project status.

type IProjectUseCase interface {
	UpdateProjectStage(ctx context.Context, projectID, stageID string, status entities.StageStatus) (entities.Project, error)
}

type ProjectUseCase struct {
	store interfaces.IEntityStore
	log   *zap.Logger
	now   func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(store interfaces.IEntityStore, logger *zap.Logger) *ProjectUseCase {
	return &ProjectUseCase{store: store, log: loggerOrNop(logger), now: utcNow}
}

func (u *ProjectUseCase) UpdateProjectStage(ctx context.Context, projectID, stageID string, status entities.StageStatus) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	stageID = strings.TrimSpace(stageID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if stageID == "" {
		return entities.Project{}, ErrInvalidStageID
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidStageStatus
	}

	var updated entities.Project
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		project := ds.Project(projectID)
		if project == nil {
			return ErrProjectNotFound
		}
		stage := project.Stage(stageID)
		if stage == nil {
			return ErrStageNotFound
		}

		now := u.now()
		stage.Transition(status, now)
		project.RefreshStatus()
		if project.StartDate == nil {
			project.StartDate = entities.TimePtr(now)
		}
		updated = *project
		return nil
	})
	if err != nil {
		u.log.Warn("[project][usecase] update stage failed",
			zap.String("project_id", projectID), zap.String("stage_id", stageID), zap.Error(err))
		return entities.Project{}, err
	}
	u.log.Info("[project][usecase] stage updated",
		zap.String("project_id", projectID),
		zap.String("stage_id", stageID),
		zap.String("stage_status", string(status)),
		zap.String("project_status", string(updated.Status)),
	)
	return updated, nil
}
