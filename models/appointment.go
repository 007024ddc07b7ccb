package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// PaymentStatus enumerates the payment sub-states of an appointment.
type PaymentStatus string

const (
	PaymentNone    PaymentStatus = "NONE"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// PaymentInfo is the payment sub-record embedded in an appointment.
type PaymentInfo struct {
	Provider string        `bson:"provider,omitempty" json:"provider,omitempty"`
	Status   PaymentStatus `bson:"status" json:"status"`
	TxnRef   string        `bson:"txnRef,omitempty" json:"txnRef,omitempty"`
}

// Appointment links a patient to a doctor's availability slot.
// AvailabilityID is unique across appointments: a slot backs at most one booking.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	PatientID      string            `bson:"patientId" json:"patientId"`
	DoctorID       string            `bson:"doctorId" json:"doctorId"`
	AvailabilityID string            `bson:"availabilityId" json:"availabilityId"`
	Status         AppointmentStatus `bson:"status" json:"status"`
	Amount         int               `bson:"amount" json:"amount"` // minor currency units
	Payment        PaymentInfo       `bson:"payment" json:"payment"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}
