package entity

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role the API distinguishes; any other value
// (or no role at all) is an ordinary user.
const RoleAdmin = "admin"

// User is identified by email. Clients may store arbitrary profile
// fields alongside the known ones; those land in Extra and are
// returned verbatim when users are listed.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Email string                 `bson:"email"`
	Role  string                 `bson:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MarshalJSON flattens Extra back into the document so stored profile
// fields round-trip to clients unmodified.
func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+3)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["_id"] = u.ID.Hex()
	}
	doc["email"] = u.Email
	if u.Role != "" {
		doc["role"] = u.Role
	}
	return json.Marshal(doc)
}
