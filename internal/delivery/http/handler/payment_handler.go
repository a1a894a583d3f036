package handler

import (
	"encoding/json"
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateIntent asks the gateway for a card payment intent over the
// payload's price and returns its client secret.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	secret, err := h.paymentUsecase.CreateIntent(r.Context(), req.Price)
	if err != nil {
		response.InternalServerError(w, "failed to create payment intent")
		return
	}

	response.JSON(w, http.StatusOK, dto.PaymentIntentResponse{ClientSecret: secret})
}
