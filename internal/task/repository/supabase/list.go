package supabase

import (
	"context"
	"net/url"
	"time"

	"remindly/internal/model"
)

type listRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListLists returns the scoped user's lists, oldest first.
func (r *implRepository) ListLists(ctx context.Context, sc model.Scope) ([]model.List, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+sc.UserID)
	query.Set("order", "created_at.asc")

	var rows []listRow
	if err := r.client.Select(ctx, listsTable, query, &rows); err != nil {
		return nil, err
	}

	lists := make([]model.List, len(rows))
	for i, row := range rows {
		lists[i] = model.List{
			ID:        row.ID,
			UserID:    row.UserID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		}
	}
	return lists, nil
}
