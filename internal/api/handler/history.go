package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Rrens/focusbot/internal/api/middleware"
	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/service"
	"github.com/go-chi/chi/v5"
)

// HistoryHandler handles chat history endpoints
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// userParam returns the explicit ?user= value, or the caller identity
func userParam(r *http.Request) string {
	if user := strings.TrimSpace(r.URL.Query().Get("user")); user != "" {
		return user
	}
	return middleware.GetIdentity(r.Context())
}

// List returns stored turns for a user, optionally filtered by ?subject=
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.historyService.List(r.Context(), userParam(r), r.URL.Query().Get("subject"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"history": entries,
	})
}

// Delete removes one turn by id
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chatID")

	if err := h.historyService.Delete(r.Context(), id, userParam(r)); err != nil {
		respondError(w, r, err)
		return
	}

	response.Message(w, "Chat deleted successfully")
}

// DeleteAll removes every turn of a user
func (h *HistoryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.historyService.DeleteAll(r.Context(), userParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"message": fmt.Sprintf("Deleted %d chats", n),
		"count":   n,
	})
}
