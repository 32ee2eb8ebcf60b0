package usecase

import (
	"context"
	"strings"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"
)

// ISnapshotUseCase is the read side: every collection as of one instant.

type ISnapshotUseCase interface {
	Snapshot(ctx context.Context) (entities.Dataset, error)
	GetProject(ctx context.Context, projectID string) (entities.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
}

type SnapshotUseCase struct {
	store interfaces.IEntityStore
}

var _ ISnapshotUseCase = (*SnapshotUseCase)(nil)

func NewSnapshotUseCase(store interfaces.IEntityStore) *SnapshotUseCase {
	return &SnapshotUseCase{store: store}
}

func (u *SnapshotUseCase) Snapshot(ctx context.Context) (entities.Dataset, error) {
	var out entities.Dataset
	err := u.store.View(ctx, func(ds entities.Dataset) error {
		out = ds
		return nil
	})
	return out, err
}

func (u *SnapshotUseCase) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	var out entities.Project
	err := u.store.View(ctx, func(ds entities.Dataset) error {
		p := ds.Project(projectID)
		if p == nil {
			return ErrProjectNotFound
		}
		out = *p
		return nil
	})
	return out, err
}

// ListTasks returns every task, or only those of projectID when it is set.
func (u *SnapshotUseCase) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	projectID = strings.TrimSpace(projectID)
	var out []entities.Task
	err := u.store.View(ctx, func(ds entities.Dataset) error {
		if projectID == "" {
			out = ds.Tasks
			return nil
		}
		out = ds.TasksForProject(projectID)
		return nil
	})
	return out, err
}
