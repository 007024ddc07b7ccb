package models

import "time"

// Diagnosis is a single coded finding recorded during a consultation.
type Diagnosis struct {
	ICDCode     string `bson:"icdCode" json:"icdCode"` // ICD-10 code, e.g. "J06.9"
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Prescription is a drug line item on a consultation.
type Prescription struct {
	Drug     string `bson:"drug" json:"drug"`
	Dosage   string `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Consultation is the clinical record written after a confirmed appointment.
// AppointmentID is unique: one consultation per appointment.
type Consultation struct {
	ID            string         `bson:"id" json:"id"`
	AppointmentID string         `bson:"appointmentId" json:"appointmentId"`
	DoctorID      string         `bson:"doctorId" json:"doctorId"`
	PatientID     string         `bson:"patientId" json:"patientId"`
	Notes         string         `bson:"notes,omitempty" json:"notes,omitempty"`
	Diagnoses     []Diagnosis    `bson:"diagnoses,omitempty" json:"diagnoses,omitempty"`
	Prescriptions []Prescription `bson:"prescriptions,omitempty" json:"prescriptions,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}

// RecordConsultationRequest is the payload for recording a consultation.
type RecordConsultationRequest struct {
	AppointmentID string         `json:"appointmentId" binding:"required"`
	Notes         string         `json:"notes"`
	Diagnoses     []Diagnosis    `json:"diagnoses"`
	Prescriptions []Prescription `json:"prescriptions"`
}
