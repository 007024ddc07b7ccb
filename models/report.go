package models

// AppointmentReportRow is one bucket of the admin appointment report,
// grouped by doctor specialization and appointment status.
type AppointmentReportRow struct {
	Specialization string `bson:"specialization" json:"specialization"`
	Status         string `bson:"status" json:"status"`
	Count          int    `bson:"count" json:"count"`
	Revenue        int    `bson:"revenue" json:"revenue"` // confirmed amounts, minor units
}
