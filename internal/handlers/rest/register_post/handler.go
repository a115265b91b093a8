package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	created, err := h.service.Register(r.Context(), entities.Registration{
		Handle:          registerDTO.Handle,
		Email:           registerDTO.Email,
		Password:        registerDTO.Password,
		PasswordConfirm: registerDTO.PasswordConfirm,
		Role:            entities.RoleType(registerDTO.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidRole),
			errors.Is(err, account.ErrWeakPassword),
			errors.Is(err, account.ErrPasswordMismatch):
			h.write(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, account.ErrConflict):
			h.write(w, http.StatusConflict, err.Error(), nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("register account")
			h.write(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.write(w, http.StatusCreated, "account registered", dto.FromAccount(created))
}

func (h *Handler) write(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	err := envelope.Write(w, statusCode, message, data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
