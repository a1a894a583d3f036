package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
	domainRepo "doctors-portal-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) domainRepo.ServiceRepository {
	return &serviceRepository{coll: db.Collection("services")}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindNames(ctx context.Context) ([]entity.Service, error) {
	projection := options.Find().SetProjection(bson.M{"name": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}
