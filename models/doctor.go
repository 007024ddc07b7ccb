package models

import "time"

// Doctor is a clinician profile owned by a user account.
type Doctor struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Fee            int       `bson:"fee" json:"fee"` // consultation fee, minor currency units
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// DoctorProfile is a doctor with the owning user's display fields joined in.
type DoctorProfile struct {
	Doctor `bson:",inline"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
}

// RegisterDoctorRequest creates a doctor profile for an authenticated user.
type RegisterDoctorRequest struct {
	Specialization string `json:"specialization" binding:"required"`
	Fee            int    `json:"fee"`
	Bio            string `json:"bio"`
}
