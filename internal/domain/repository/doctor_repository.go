package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorRepository interface {
	Insert(ctx context.Context, doctor *entity.Doctor) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
