package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
	domainRepo "doctors-portal-server/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type doctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) domainRepo.DoctorRepository {
	return &doctorRepository{coll: db.Collection("doctors")}
}

func (r *doctorRepository) Insert(ctx context.Context, doctor *entity.Doctor) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []entity.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
