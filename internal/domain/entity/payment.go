package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a confirmed gateway transaction against a booking.
// It is write-only: no endpoint reads it back.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	BookingID     string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Patient       string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
