package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/llm"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors onto HTTP statuses
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var providerErr *llm.ProviderError

	switch {
	case errors.As(err, &providerErr):
		response.ErrorWithDetails(w, http.StatusBadGateway, providerErr.Error(), providerErr.Body)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateUser),
		errors.Is(err, domain.ErrDuplicateSubject),
		errors.Is(err, domain.ErrForbidden):
		response.BadRequest(w, publicMessage(err))

	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, publicMessage(err))

	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, publicMessage(err))

	case errors.Is(err, llm.ErrParse):
		cause := strings.TrimPrefix(err.Error(), llm.ErrParse.Error())
		response.InternalError(w, "Failed to parse response"+cause)

	case errors.Is(err, domain.ErrNotConfigured):
		log.Error().Err(err).Str("path", r.URL.Path).Msg("provider not configured")
		msg := err.Error()
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			msg = cfgErr.Reason
		}
		response.InternalError(w, msg)

	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		response.InternalError(w, "Internal server error")
	}
}

func publicMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var perr *domain.PublicError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}
