package models

import "time"

// Availability represents a bookable calendar slot owned by a doctor.
// The tuple (doctorId, date, startTime) is unique.
type Availability struct {
	ID        string     `bson:"id" json:"id"`
	DoctorID  string     `bson:"doctorId" json:"doctorId"`
	Date      time.Time  `bson:"date" json:"date"`           // normalized to local midnight
	StartTime string     `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string     `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsBooked  bool       `bson:"isBooked" json:"isBooked"`
	HoldUntil *time.Time `bson:"holdUntil,omitempty" json:"holdUntil,omitempty"`
}

// Held reports whether the slot carries an unexpired soft hold at the given instant.
func (a *Availability) Held(now time.Time) bool {
	return a.HoldUntil != nil && a.HoldUntil.After(now)
}

// SeedAvailabilitiesRequest defines the payload for seeding a doctor's slots.
type SeedAvailabilitiesRequest struct {
	Slots []SeedSlot `json:"slots" binding:"required"`
}

// SeedSlot is a single slot in a seeding request.
type SeedSlot struct {
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
