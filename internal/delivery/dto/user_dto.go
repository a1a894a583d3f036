package dto

import "go.mongodb.org/mongo-driver/mongo"

// UpsertUserResponse returns the raw write result plus a fresh token
// bound to the upserted email.
type UpsertUserResponse struct {
	Result *mongo.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
