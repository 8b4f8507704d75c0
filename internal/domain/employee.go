package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Employee is a single employee record. Email is unique across the
// collection. DateOfJoining defaults to the write time when unset.
type Employee struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string        `bson:"first_name" json:"first_name"`
	LastName      string        `bson:"last_name" json:"last_name"`
	Email         string        `bson:"email" json:"email"`
	Position      string        `bson:"position" json:"position"`
	Salary        float64       `bson:"salary" json:"salary"`
	DateOfJoining time.Time     `bson:"date_of_joining" json:"date_of_joining"`
	Department    string        `bson:"department" json:"department"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
