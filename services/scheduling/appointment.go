package scheduling

import (
	"context"
	"errors"

	"clinicore/config"
	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateAppointment books a held or available slot into a PENDING appointment.
// The slot is loaded and checked for existence and the booked flag only; hold
// ownership is not re-verified. The unique availabilityId index resolves the
// concurrent double-create race: exactly one insert wins.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, patientID, doctorID, slotID string) (*models.Appointment, error) {
	if patientID == "" {
		return nil, NewUnauthorizedError("missing patient identity")
	}
	if slotID == "" {
		return nil, NewSlotUnavailableError("missing slot id")
	}

	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewSlotUnavailableError("slot not found")
		}
		return nil, err
	}
	if slot.IsBooked {
		return nil, NewSlotUnavailableError("slot is already booked, pick another")
	}
	if doctorID == "" {
		doctorID = slot.DoctorID
	}

	appt := &models.Appointment{
		PatientID:      patientID,
		DoctorID:       doctorID,
		AvailabilityID: slot.ID,
		Status:         models.AppointmentPending,
		Amount:         s.consultationFee(ctx, slot.DoctorID),
		Payment:        models.PaymentInfo{Status: models.PaymentNone},
	}

	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotAlreadyBooked) {
			return nil, NewSlotUnavailableError("slot is already booked, pick another")
		}
		return nil, err
	}
	return appt, nil
}

// consultationFee resolves the doctor's fee, falling back to the configured
// default when the doctor record is missing or carries no fee.
func (s *DefaultSchedulingService) consultationFee(ctx context.Context, doctorID string) int {
	doc, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		utils.GetLogger().Warn("fee lookup failed, using default",
			zap.String("doctorId", doctorID), zap.Error(err))
		return defaultFee()
	}
	if doc.Fee <= 0 {
		return defaultFee()
	}
	return doc.Fee
}

func defaultFee() int {
	if f := config.AppConfig.DefaultFee; f > 0 {
		return f
	}
	return 5000
}
