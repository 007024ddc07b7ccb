package models

import "time"

// PaymentRequest describes a charge to run against the payment gateway.
type PaymentRequest struct {
	AppointmentID string
	PatientID     string
	Amount        int // minor currency units
	Currency      string
	Description   string
	Metadata      map[string]string
}

// PaymentReceipt is the gateway's record of a successful charge.
type PaymentReceipt struct {
	Provider    string
	TxnRef      string
	Amount      int
	Currency    string
	ProcessedAt time.Time
}
