package dto

import (
	"doctors-portal-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/mongo"
)

// Request DTOs

type CreateBookingRequest struct {
	Treatment   string  `json:"treatment" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Slot        string  `json:"slot" validate:"required"`
	Patient     string  `json:"patient" validate:"required,email"`
	PatientName string  `json:"patientName"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price"`
}

// MarkPaidRequest carries the gateway confirmation for a booking.
type MarkPaidRequest struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	BookingID     string  `json:"bookingId"`
	Patient       string  `json:"patient"`
	Price         float64 `json:"price"`
}

// Response DTOs

// CreateBookingResponse preserves the original wire shape: a fresh
// insert returns success=true with the insert result, a duplicate
// returns success=false echoing the existing booking.
type CreateBookingResponse struct {
	Success bool                   `json:"success"`
	Result  *mongo.InsertOneResult `json:"result,omitempty"`
	Booking *entity.Booking        `json:"booking,omitempty"`
}
