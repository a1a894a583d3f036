package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/delivery/http/middleware"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
	"doctors-portal-server/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// Create books an appointment. Booking is public; a duplicate submission
// for the same (treatment, date, patient) is answered with success=false
// and the existing booking rather than an error.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "failed to create booking")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ListByPatient returns the authenticated patient's bookings. The patient
// query parameter must match the token's email claim.
func (h *BookingHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized access")
		return
	}

	patient := r.URL.Query().Get("patient")
	if patient != email {
		response.Forbidden(w, "forbidden access")
		return
	}

	bookings, err := h.bookingUsecase.ListByPatient(r.Context(), patient)
	if err != nil {
		response.InternalServerError(w, "failed to fetch bookings")
		return
	}
	if bookings == nil {
		bookings = []entity.Booking{}
	}
	response.JSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.bookingUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingID):
			response.BadRequest(w, "invalid booking id")
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "booking not found")
		default:
			response.InternalServerError(w, "failed to fetch booking")
		}
		return
	}

	response.JSON(w, http.StatusOK, booking)
}

// MarkPaid records a gateway payment and flips the booking to paid,
// returning the updated booking document.
func (h *BookingHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.MarkPaid(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingID):
			response.BadRequest(w, "invalid booking id")
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "booking not found")
		default:
			response.InternalServerError(w, "failed to record payment")
		}
		return
	}

	response.JSON(w, http.StatusOK, booking)
}
