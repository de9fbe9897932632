package http

import (
	"time"

	"remindly/internal/model"
	"remindly/internal/task"
	"remindly/pkg/schedule"
)

// --- Request DTOs ---

type createReq struct {
	Text   string `json:"text"    binding:"required,min=1,max=2000"`
	ListID string `json:"list_id" binding:"omitempty,uuid"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Text:   r.Text,
		ListID: r.ListID,
	}
}

// ---

type listReq struct {
	ListID string `form:"list_id"`
	Done   *bool  `form:"done"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		ListID: r.ListID,
		Done:   r.Done,
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID         string               `json:"-"` // populated from URI param
	Title      *string              `json:"title"      binding:"omitempty,max=2000"`
	Done       *bool                `json:"done"`
	ListID     *string              `json:"list_id"`
	Priority   *string              `json:"priority"   binding:"omitempty,oneof=now high low"`
	Recurrence *schedule.Recurrence `json:"recurrence"`
	RemindAt   *time.Time           `json:"remind_at"`
}

func (r updateReq) validate() error {
	if r.Recurrence != nil && r.RemindAt != nil {
		return errScheduleConflict
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:         r.ID,
		Title:      r.Title,
		Done:       r.Done,
		ListID:     r.ListID,
		Priority:   r.Priority,
		Recurrence: r.Recurrence,
		RemindAt:   r.RemindAt,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	DisplayText string               `json:"display_text,omitempty"`
	ListID      string               `json:"list_id,omitempty"`
	Priority    string               `json:"priority"`
	Done        bool                 `json:"done"`
	Recurrence  *schedule.Recurrence `json:"recurrence,omitempty"`
	RemindAt    *time.Time           `json:"remind_at,omitempty"`
	// NextOccurrence is computed per request; it is never stored.
	NextOccurrence *time.Time `json:"next_occurrence,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		DisplayText: t.DisplayText,
		ListID:      t.ListID,
		Priority:    t.Priority,
		Done:        t.Done,
		Recurrence:  t.Recurrence,
		RemindAt:    t.RemindAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.Recurrence != nil {
		if resp.DisplayText == "" {
			resp.DisplayText = schedule.Format(*t.Recurrence)
		}
		loc, err := time.LoadLocation(h.timezone)
		if err != nil {
			loc = time.UTC
		}
		if next, ok := schedule.Next(*t.Recurrence, time.Now(), loc); ok {
			resp.NextOccurrence = &next
		}
	} else if t.RemindAt != nil {
		resp.NextOccurrence = t.RemindAt
	}

	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: h.newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = h.newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: h.newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: h.newTaskResp(out.Task)}
}
