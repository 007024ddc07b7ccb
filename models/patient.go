package models

import "time"

// Patient is a patient profile owned by a user account.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	DateOfBirth string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // "YYYY-MM-DD"
	Gender      string    `bson:"gender,omitempty" json:"gender,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// RegisterPatientRequest creates a patient profile for an authenticated user.
type RegisterPatientRequest struct {
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}
