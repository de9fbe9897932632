package usecase

import (
	"context"
	"strings"
	"time"

	"remindly/internal/model"
	"remindly/internal/task"
	"remindly/internal/task/repository"
	"remindly/pkg/schedule"
)

// Create extracts any schedule from the raw text, normalizes the remaining
// title, and persists the task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateOutput{}, task.ErrEmptyText
	}

	uc.l.Infof(ctx, "Create: user=%s input_length=%d", sc.UserID, len(input.Text))

	now := time.Now()
	if loc, err := time.LoadLocation(uc.timezone); err == nil {
		now = now.In(loc)
	}

	// Step 1: Pull the schedule phrase out of the text
	extracted := uc.extractor.Extract(input.Text, now)

	title := extracted.ResidualText
	if title == "" {
		title = strings.TrimSpace(input.Text)
	}

	opt := repository.CreateTaskOptions{
		Title:    title,
		ListID:   input.ListID,
		Priority: model.PriorityLow,
	}

	switch extracted.Kind {
	case schedule.KindRecurrence:
		opt.Recurrence = extracted.Recurrence
		opt.DisplayText = schedule.Format(*extracted.Recurrence)
	case schedule.KindAbsoluteDate:
		remindAt := extracted.AbsoluteDate
		opt.RemindAt = &remindAt
	}

	// Step 2: Title cleanup and list matching via LLM (non-fatal)
	if normalized := uc.tryNormalizeTitle(ctx, sc, title); normalized != nil {
		if normalized.CorrectedText != "" {
			opt.Title = normalized.CorrectedText
		}
		if opt.ListID == "" && normalized.ListID != "" {
			opt.ListID = normalized.ListID
		}
		if model.ValidPriority(normalized.Priority) {
			opt.Priority = normalized.Priority
		}
	}

	// Step 3: Persist
	created, err := uc.repo.CreateTask(ctx, sc, opt)
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to store task %q: %v", opt.Title, err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: stored task id=%s kind=%d", created.ID, extracted.Kind)

	return task.CreateOutput{Task: created}, nil
}
