package handler

import (
	"encoding/json"
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
	"doctors-portal-server/pkg/validator"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.contactUsecase.Submit(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "failed to store contact message")
		return
	}

	response.JSON(w, http.StatusCreated, message)
}
