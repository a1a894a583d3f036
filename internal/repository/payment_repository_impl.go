package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
	domainRepo "doctors-portal-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type paymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) domainRepo.PaymentRepository {
	return &paymentRepository{coll: db.Collection("payments")}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *entity.Payment) error {
	_, err := r.coll.InsertOne(ctx, payment)
	return err
}
