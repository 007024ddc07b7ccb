package consultation

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "clinicore/database/repository/appointment"
	consultationRepo "clinicore/database/repository/consultation"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrAppointmentNotFound is returned when the referenced appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrNotConfirmed is returned when recording against an unconfirmed appointment.
	ErrNotConfirmed = errors.New("appointment is not confirmed")
	// ErrWrongDoctor is returned when a doctor records against another doctor's appointment.
	ErrWrongDoctor = errors.New("appointment belongs to another doctor")
)

type ConsultationService interface {
	Record(ctx context.Context, doctorID string, req models.RecordConsultationRequest) (*models.Consultation, error)
	GetByAppointment(ctx context.Context, apptID string) (*models.Consultation, error)
}

// DefaultConsultationService records clinical notes and ICD-10 coded diagnoses
// against confirmed appointments.
type DefaultConsultationService struct {
	Repo         consultationRepo.ConsultationRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (s *DefaultConsultationService) Record(ctx context.Context, doctorID string, req models.RecordConsultationRequest) (*models.Consultation, error) {
	appt, err := s.Appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.Status != models.AppointmentConfirmed {
		return nil, ErrNotConfirmed
	}
	if doctorID != "" && appt.DoctorID != doctorID {
		return nil, ErrWrongDoctor
	}

	for _, d := range req.Diagnoses {
		if d.ICDCode == "" {
			return nil, fmt.Errorf("diagnosis missing ICD-10 code")
		}
	}

	cons := &models.Consultation{
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Notes:         req.Notes,
		Diagnoses:     req.Diagnoses,
		Prescriptions: req.Prescriptions,
	}
	if err := s.Repo.Create(ctx, cons); err != nil {
		return nil, err
	}
	return cons, nil
}

func (s *DefaultConsultationService) GetByAppointment(ctx context.Context, apptID string) (*models.Consultation, error) {
	return s.Repo.GetByAppointmentID(ctx, apptID)
}
