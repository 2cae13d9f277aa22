package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/focusbot/internal/api/middleware"
	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/service"
)

// ChatHandler handles tutoring messages
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send answers one tutoring message for the caller identity
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.chatService.Chat(r.Context(), middleware.GetIdentity(r.Context()), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, resp)
}
