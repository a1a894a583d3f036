package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is an admin-managed staff record.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
