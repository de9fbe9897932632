package usecase

import (
	"context"
	"errors"

	"remindly/internal/model"
	"remindly/internal/task"
	"remindly/internal/task/repository"
	"remindly/pkg/schedule"
)

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	found, err := uc.repo.GetTask(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailOutput{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Detail: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: found}, nil
}

// Update applies a partial update. Changing the schedule re-renders the
// stored display text so clients never see a stale description.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Priority != nil && !model.ValidPriority(*input.Priority) {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}
	if input.Title != nil && *input.Title == "" {
		return task.UpdateOutput{}, task.ErrEmptyText
	}

	opt := repository.UpdateTaskOptions{
		ID:       input.ID,
		Title:    input.Title,
		Done:     input.Done,
		ListID:   input.ListID,
		Priority: input.Priority,
	}

	switch {
	case input.Recurrence != nil:
		opt.Recurrence = input.Recurrence
		display := schedule.Format(*input.Recurrence)
		opt.DisplayText = &display
	case input.RemindAt != nil:
		opt.RemindAt = input.RemindAt
	}

	updated, err := uc.repo.UpdateTask(ctx, sc, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Update: %v", err)
		return task.UpdateOutput{}, err
	}

	uc.l.Infof(ctx, "Update: task id=%s", updated.ID)
	return task.UpdateOutput{Task: updated}, nil
}

// Delete permanently removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "Delete: task id=%s", id)
	return nil
}
