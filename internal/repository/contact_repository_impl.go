package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
	domainRepo "doctors-portal-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type contactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) domainRepo.ContactRepository {
	return &contactRepository{coll: db.Collection("contacts")}
}

func (r *contactRepository) Insert(ctx context.Context, message *entity.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, message)
	return err
}
