package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"remindly/internal/model"
	"remindly/internal/task/repository"
	"remindly/pkg/schedule"
)

// taskRow mirrors the tasks table. The recurrence descriptor is stored as
// flat columns named after the wire fields the clients read.
type taskRow struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	DisplayText  string     `json:"display_text"`
	ListID       *string    `json:"list_id,omitempty"`
	Priority     string     `json:"priority"`
	Done         bool       `json:"done"`
	Frequency    *string    `json:"frequency,omitempty"`
	Time         *string    `json:"time,omitempty"`
	Interval     *int       `json:"interval,omitempty"`
	DayOfWeek    *int       `json:"dayOfWeek,omitempty"`
	DayOfMonth   *int       `json:"dayOfMonth,omitempty"`
	MonthOfYear  *int       `json:"monthOfYear,omitempty"`
	OriginalText *string    `json:"originalText,omitempty"`
	RemindAt     *time.Time `json:"remind_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (r taskRow) toModel() model.Task {
	t := model.Task{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		DisplayText: r.DisplayText,
		Priority:    r.Priority,
		Done:        r.Done,
		RemindAt:    r.RemindAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ListID != nil {
		t.ListID = *r.ListID
	}
	if r.Frequency != nil {
		rec := schedule.Recurrence{
			Frequency:   schedule.Frequency(*r.Frequency),
			Time:        schedule.DefaultTime,
			Interval:    1,
			DayOfWeek:   r.DayOfWeek,
			DayOfMonth:  r.DayOfMonth,
			MonthOfYear: r.MonthOfYear,
		}
		if r.Time != nil {
			rec.Time = *r.Time
		}
		if r.Interval != nil {
			rec.Interval = *r.Interval
		}
		if r.OriginalText != nil {
			rec.OriginalText = *r.OriginalText
		}
		t.Recurrence = &rec
	}
	return t
}

// recurrenceColumns flattens a descriptor into the column map used by
// inserts and patches. A nil descriptor nulls every descriptor column.
func recurrenceColumns(rec *schedule.Recurrence) map[string]any {
	cols := map[string]any{
		"frequency":    nil,
		"time":         nil,
		"interval":     nil,
		"dayOfWeek":    nil,
		"dayOfMonth":   nil,
		"monthOfYear":  nil,
		"originalText": nil,
	}
	if rec == nil {
		return cols
	}
	cols["frequency"] = string(rec.Frequency)
	cols["time"] = rec.Time
	cols["interval"] = rec.Interval
	if rec.DayOfWeek != nil {
		cols["dayOfWeek"] = *rec.DayOfWeek
	}
	if rec.DayOfMonth != nil {
		cols["dayOfMonth"] = *rec.DayOfMonth
	}
	if rec.MonthOfYear != nil {
		cols["monthOfYear"] = *rec.MonthOfYear
	}
	if rec.OriginalText != "" {
		cols["originalText"] = rec.OriginalText
	}
	return cols
}

// CreateTask inserts a new task row for the scoped user.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	body := map[string]any{
		"id":           uuid.NewString(),
		"user_id":      sc.UserID,
		"title":        opt.Title,
		"display_text": opt.DisplayText,
		"priority":     opt.Priority,
		"done":         false,
	}
	if opt.ListID != "" {
		body["list_id"] = opt.ListID
	}
	for k, v := range recurrenceColumns(opt.Recurrence) {
		if v != nil {
			body[k] = v
		}
	}
	if opt.RemindAt != nil {
		body["remind_at"] = opt.RemindAt.UTC().Format(time.RFC3339)
	}

	var rows []taskRow
	if err := r.client.Insert(ctx, tasksTable, []map[string]any{body}, &rows); err != nil {
		return model.Task{}, err
	}
	if len(rows) == 0 {
		return model.Task{}, fmt.Errorf("insert returned no rows")
	}
	return rows[0].toModel(), nil
}

// GetTask fetches a single task row by ID, scoped to the user.
func (r *implRepository) GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("user_id", "eq."+sc.UserID)
	query.Set("limit", "1")

	var rows []taskRow
	if err := r.client.Select(ctx, tasksTable, query, &rows); err != nil {
		return model.Task{}, err
	}
	if len(rows) == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return rows[0].toModel(), nil
}

// ListTasks lists task rows for the scoped user, newest first. The second
// return value is the total number of matching rows across all pages.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}

	query := url.Values{}
	query.Set("user_id", "eq."+sc.UserID)
	query.Set("order", "created_at.desc")
	query.Set("limit", strconv.Itoa(limit))
	if opt.Offset > 0 {
		query.Set("offset", strconv.Itoa(opt.Offset))
	}
	if opt.ListID != "" {
		query.Set("list_id", "eq."+opt.ListID)
	}
	if opt.Done != nil {
		query.Set("done", "is."+strconv.FormatBool(*opt.Done))
	}

	var rows []taskRow
	total, err := r.client.SelectCount(ctx, tasksTable, query, &rows)
	if err != nil {
		return nil, 0, err
	}
	if total < 0 {
		total = len(rows)
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, total, nil
}

// UpdateTask patches a task row and returns the updated state.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) (model.Task, error) {
	body := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if opt.Title != nil {
		body["title"] = *opt.Title
	}
	if opt.DisplayText != nil {
		body["display_text"] = *opt.DisplayText
	}
	if opt.Done != nil {
		body["done"] = *opt.Done
	}
	if opt.ListID != nil {
		if *opt.ListID == "" {
			body["list_id"] = nil
		} else {
			body["list_id"] = *opt.ListID
		}
	}
	if opt.Priority != nil {
		body["priority"] = *opt.Priority
	}

	switch {
	case opt.Recurrence != nil:
		for k, v := range recurrenceColumns(opt.Recurrence) {
			body[k] = v
		}
		body["remind_at"] = nil
	case opt.RemindAt != nil:
		for k, v := range recurrenceColumns(nil) {
			body[k] = v
		}
		body["remind_at"] = opt.RemindAt.UTC().Format(time.RFC3339)
	case opt.ClearSchedule:
		for k, v := range recurrenceColumns(nil) {
			body[k] = v
		}
		body["remind_at"] = nil
	}

	query := url.Values{}
	query.Set("id", "eq."+opt.ID)
	query.Set("user_id", "eq."+sc.UserID)

	var rows []taskRow
	if err := r.client.Update(ctx, tasksTable, query, body, &rows); err != nil {
		return model.Task{}, err
	}
	if len(rows) == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return rows[0].toModel(), nil
}

// DeleteTask removes a task row scoped to the user.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("user_id", "eq."+sc.UserID)
	return r.client.Delete(ctx, tasksTable, query)
}
