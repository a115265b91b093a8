package token_refresh_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/handlers/rest/envelope"
	"service/internal/service/account"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var refreshDTO dto.RefreshRequest
	err := json.NewDecoder(r.Body).Decode(&refreshDTO)
	if err != nil || refreshDTO.Refresh == "" {
		h.write(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	pair, err := h.service.Refresh(r.Context(), refreshDTO.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidToken):
			h.write(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("refresh tokens")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.write(w, http.StatusOK, "tokens refreshed", dto.FromTokenPair(pair))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
