package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"remindly/internal/model"
	"remindly/internal/task/repository"
	pkgResponse "remindly/pkg/response"
	"remindly/pkg/schedule"
)

// HandleStoreWebhook processes row-change events from the hosted database.
// Its job is to keep the stored display text in sync with the descriptor
// columns when rows are edited outside this service (SQL console, other
// clients, migrations).
func (h *Handler) HandleStoreWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Whitelist first, before reading the body
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature
	signature := c.GetHeader("X-Webhook-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Parse event
	var event storeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Errorf(ctx, "Failed to parse store event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if event.Table != "tasks" || event.Type == eventDelete || event.Record == nil {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "no task row to reconcile"})
		return
	}

	// Process in background
	go h.reconcileAsync(event)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// reconcileAsync re-renders the display text for a changed row and patches
// it back when stale.
func (h *Handler) reconcileAsync(event storeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	record := event.Record
	rec := record.recurrence()
	if rec == nil {
		return
	}

	display := schedule.Format(*rec)
	if display == record.DisplayText {
		return
	}

	h.l.Infof(ctx, "Webhook: display text stale for task=%s (%q -> %q)", record.ID, record.DisplayText, display)

	sc := model.Scope{UserID: record.UserID}
	if _, err := h.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{
		ID:          record.ID,
		DisplayText: &display,
	}); err != nil {
		h.l.Errorf(ctx, "Webhook: failed to patch display text for task=%s: %v", record.ID, err)
		return
	}

	h.l.Infof(ctx, "Webhook: display text reconciled for task=%s event=%s", record.ID, event.Type)
}
