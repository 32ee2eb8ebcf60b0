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
	ErrApprovalNotFound      = errors.New("approval not found")
	ErrInvalidApprovalID     = errors.New("invalid approval id")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
)

// IApprovalUseCase records design-review decisions.
//
//   - revision_required pushes the approval due date RevisionWindow from now.
//   - approved completes every open Designer stage of the linked project and
//     re-derives the project status.

type IApprovalUseCase interface {
	RecordApprovalDecision(ctx context.Context, approvalID string, status entities.ApprovalStatus, notes *string) (entities.Approval, error)
}

type ApprovalUseCase struct {
	store interfaces.IEntityStore
	log   *zap.Logger
	now   func() time.Time
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(store interfaces.IEntityStore, logger *zap.Logger) *ApprovalUseCase {
	return &ApprovalUseCase{store: store, log: loggerOrNop(logger), now: utcNow}
}

func (u *ApprovalUseCase) RecordApprovalDecision(ctx context.Context, approvalID string, status entities.ApprovalStatus, notes *string) (entities.Approval, error) {
	approvalID = strings.TrimSpace(approvalID)
	if approvalID == "" {
		return entities.Approval{}, ErrInvalidApprovalID
	}
	if !status.Valid() {
		return entities.Approval{}, ErrInvalidApprovalStatus
	}

	var (
		updated   entities.Approval
		completed int
	)
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		approval := ds.Approval(approvalID)
		if approval == nil {
			return ErrApprovalNotFound
		}
		now := u.now()
		approval.Status = status
		if notes != nil {
			approval.Notes = *notes
		}

		switch status {
		case entities.ApprovalStatusRevisionRequired:
			approval.DueAt = entities.TimePtr(now.Add(entities.RevisionWindow))
		case entities.ApprovalStatusApproved:
			if project := ds.Project(approval.ProjectID); project != nil {
				completed = completeDesignerStages(project, now)
				project.RefreshStatus()
			}
		}
		updated = *approval
		return nil
	})
	if err != nil {
		u.log.Warn("[approval][usecase] record decision failed", zap.String("approval_id", approvalID), zap.Error(err))
		return entities.Approval{}, err
	}
	u.log.Info("[approval][usecase] decision recorded",
		zap.String("approval_id", approvalID),
		zap.String("status", string(status)),
		zap.Int("stages_completed", completed),
	)
	return updated, nil
}

func completeDesignerStages(project *entities.Project, now time.Time) int {
	n := 0
	for i := range project.Stages {
		s := &project.Stages[i]
		if s.OwnerRole != entities.RoleDesigner || s.Status == entities.StageStatusCompleted {
			continue
		}
		s.Transition(entities.StageStatusCompleted, now)
		n++
	}
	return n
}
