package repository

import (
	"context"
	"errors"

	"doctors-portal-server/internal/domain/entity"
	domainRepo "doctors-portal-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) domainRepo.BookingRepository {
	return &bookingRepository{coll: db.Collection("bookings")}
}

func (r *bookingRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*entity.Booking, error) {
	filter := bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}

	var booking entity.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]entity.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByPatient(ctx context.Context, patient string) ([]entity.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"patient": patient})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*entity.Booking, error) {
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking entity.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
