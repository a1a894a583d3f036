package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	// FindByKey looks up a booking by its uniqueness triple.
	// Returns (nil, nil) when no booking matches.
	FindByKey(ctx context.Context, treatment, date, patient string) (*entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]entity.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]entity.Booking, error)
	// FindByID returns (nil, nil) when no booking matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error)
	// MarkPaid sets paid=true and stores the transaction id, returning the
	// updated document, or (nil, nil) when the booking does not exist.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*entity.Booking, error)
}
