package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a login account. Emails are stored lowercase and are unique
// across the collection (enforced by a unique index).
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
