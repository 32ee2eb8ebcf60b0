package usecase

import (
	"context"
	"errors"
	"strings"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

type ITaskUseCase interface {
	UpdateTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (entities.Task, error)
}

type TaskUseCase struct {
	store interfaces.IEntityStore
	log   *zap.Logger
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(store interfaces.IEntityStore, logger *zap.Logger) *TaskUseCase {
	return &TaskUseCase{store: store, log: loggerOrNop(logger)}
}

func (u *TaskUseCase) UpdateTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	if !status.Valid() {
		return entities.Task{}, ErrInvalidTaskStatus
	}

	var updated entities.Task
	err := u.store.Update(ctx, func(ds *entities.Dataset) error {
		task := ds.Task(taskID)
		if task == nil {
			return ErrTaskNotFound
		}
		task.Status = status
		updated = *task
		return nil
	})
	if err != nil {
		u.log.Warn("[task][usecase] update status failed", zap.String("task_id", taskID), zap.Error(err))
		return entities.Task{}, err
	}
	u.log.Info("[task][usecase] status updated", zap.String("task_id", taskID), zap.String("status", string(status)))
	return updated, nil
}
