package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// decodeCredentials reads and validates an email/password body.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (domain.Credentials, bool) {
	var input domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return input, false
	}
	input = input.Normalize()

	if err := validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				switch e.Tag() {
				case "required":
					response.BadRequest(w, "Email and password are required.")
				case "max":
					response.BadRequest(w, e.Field()+" must be at most "+e.Param()+" characters")
				default:
					response.BadRequest(w, e.Field()+" failed validation on "+e.Tag())
				}
				return input, false
			}
		}
		response.BadRequest(w, err.Error())
		return input, false
	}

	return input, true
}

// Signup handles account creation
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, token)
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.OK(w, token)
}
