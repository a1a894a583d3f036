package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with its full list of time slots.
// Slots are plain labels such as "9:00 AM - 9:30 AM"; availability
// computations replace the list in the response only, never in the store.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
	Slots []string           `bson:"slots,omitempty" json:"slots"`
}
