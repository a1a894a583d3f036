package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
	"doctors-portal-server/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "failed to create doctor")
		return
	}

	response.JSON(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to fetch doctors")
		return
	}
	if doctors == nil {
		doctors = []entity.Doctor{}
	}
	response.JSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), email); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "doctor not found")
			return
		}
		response.InternalServerError(w, "failed to delete doctor")
		return
	}

	response.JSON(w, http.StatusOK, dto.DeleteResponse{DeletedCount: 1})
}
