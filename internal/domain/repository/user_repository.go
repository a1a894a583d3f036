package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	// Upsert replaces the fields of the user matching email, creating the
	// record when absent. The raw write result is part of the wire contract.
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*mongo.UpdateResult, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindAll(ctx context.Context) ([]entity.User, error)
}
