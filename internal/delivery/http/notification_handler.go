package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frontandrew/cda/internal/notify"
)

// NotificationHandler отдает и снимает транзиентные уведомления
type NotificationHandler struct {
	toasts *notify.Queue
}

// NewNotificationHandler создает новый handler
func NewNotificationHandler(toasts *notify.Queue) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// List возвращает живые уведомления
// GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.toasts.List(),
	})
}

// Dismiss снимает уведомление; повторное снятие безвредно
// DELETE /api/v1/notifications/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.toasts.Remove(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
