package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Rrens/focusbot/internal/api/middleware"
	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/service"
	"github.com/go-chi/chi/v5"
)

// SubjectHandler handles custom subject endpoints
type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// Add stores a custom subject
func (h *SubjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input domain.SubjectCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user := strings.TrimSpace(input.User)
	if user == "" {
		user = middleware.GetIdentity(r.Context())
	}

	if err := h.subjectService.Add(r.Context(), user, input.Subject); err != nil {
		respondError(w, r, err)
		return
	}

	response.Message(w, "Subject added successfully")
}

// List returns default and custom subjects
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjectService.List(r.Context(), userParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"subjects": subjects,
	})
}

// Delete removes a custom subject
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")
	// chi routes on RawPath when it is set, which leaves the segment escaped
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(subject)
		if err != nil {
			response.BadRequest(w, "Invalid subject name")
			return
		}
		subject = unescaped
	}

	if err := h.subjectService.Remove(r.Context(), userParam(r), subject); err != nil {
		respondError(w, r, err)
		return
	}

	response.Message(w, "Subject deleted successfully")
}
