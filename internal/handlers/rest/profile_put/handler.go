package profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/handlers/rest/envelope"
	"service/internal/pkg/middlewares/auth"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.write(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var accountDTO dto.AccountModify
	err := json.NewDecoder(r.Body).Decode(&accountDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	// роль через профиль не передается, сервис ее все равно отбросит
	updated, err := h.service.UpdateProfile(r.Context(), actor, entities.AccountInput{
		Handle:   accountDTO.Handle,
		Email:    accountDTO.Email,
		Password: accountDTO.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrWeakPassword):
			h.write(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, account.ErrConflict):
			h.write(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, account.ErrAccountNotFound):
			h.write(w, http.StatusNotFound, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update profile")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.write(w, http.StatusOK, "profile updated", dto.FromAccount(updated))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
