package usecase

import (
	"context"
	"errors"
	"time"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"
	"doctors-portal-server/internal/service"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidBookingID = errors.New("invalid booking id")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	ListByPatient(ctx context.Context, patient string) ([]entity.Booking, error)
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	MarkPaid(ctx context.Context, id string, req *dto.MarkPaidRequest) (*entity.Booking, error)
}

type bookingUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	notifier    *service.NotificationService
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	notifier *service.NotificationService,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
	}
}

// CreateBooking inserts a booking unless one already exists for the same
// (treatment, date, patient) triple. A duplicate is not an error: the
// existing booking is echoed back with success=false. The existence check
// gives the friendly read-back; the unique index on the collection
// backstops concurrent identical submissions.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	existing, err := u.bookingRepo.FindByKey(ctx, req.Treatment, req.Date, req.Patient)
	if err != nil {
		u.log.Warnf("Failed to check existing booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return &dto.CreateBookingResponse{Success: false, Booking: existing}, nil
	}

	booking := &entity.Booking{
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Price:       req.Price,
	}

	id, err := u.bookingRepo.Insert(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race to a concurrent identical submission; answer
		// with the winner, same as the pre-check path.
		winner, findErr := u.bookingRepo.FindByKey(ctx, req.Treatment, req.Date, req.Patient)
		if findErr != nil || winner == nil {
			u.log.Warnf("Duplicate booking insert but winner lookup failed: %+v", findErr)
			return nil, err
		}
		return &dto.CreateBookingResponse{Success: false, Booking: winner}, nil
	}
	if err != nil {
		u.log.Warnf("Failed to insert booking: %+v", err)
		return nil, err
	}
	booking.ID = id

	if u.notifier != nil {
		u.notifier.BookingConfirmed(booking)
	}

	return &dto.CreateBookingResponse{
		Success: true,
		Result:  &mongo.InsertOneResult{InsertedID: id},
	}, nil
}

func (u *bookingUsecase) ListByPatient(ctx context.Context, patient string) ([]entity.Booking, error) {
	bookings, err := u.bookingRepo.FindByPatient(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to list bookings for %s: %+v", patient, err)
		return nil, err
	}
	return bookings, nil
}

func (u *bookingUsecase) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}

	booking, err := u.bookingRepo.FindByID(ctx, objID)
	if err != nil {
		u.log.Warnf("Failed to fetch booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// MarkPaid records the gateway confirmation and flips the booking to paid,
// returning the updated booking. The two writes are not transactional; a
// failure between them leaves a recorded payment without the booking
// update, which is logged.
func (u *bookingUsecase) MarkPaid(ctx context.Context, id string, req *dto.MarkPaidRequest) (*entity.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}

	bookingID := req.BookingID
	if bookingID == "" {
		bookingID = id
	}

	payment := &entity.Payment{
		TransactionID: req.TransactionID,
		BookingID:     bookingID,
		Patient:       req.Patient,
		Price:         req.Price,
		CreatedAt:     time.Now().UTC(),
	}
	if err := u.paymentRepo.Insert(ctx, payment); err != nil {
		u.log.Warnf("Failed to insert payment %s: %+v", req.TransactionID, err)
		return nil, err
	}

	booking, err := u.bookingRepo.MarkPaid(ctx, objID, req.TransactionID)
	if err != nil {
		u.log.Errorf("Payment %s recorded but booking %s update failed: %+v", req.TransactionID, id, err)
		return nil, err
	}
	if booking == nil {
		u.log.Errorf("Payment %s recorded for missing booking %s", req.TransactionID, id)
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
