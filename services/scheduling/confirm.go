package scheduling

import (
	"context"
	"errors"
	"fmt"

	"clinicore/config"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PayAndConfirm runs the payment attempt for a pending appointment and, on
// success, marks the slot booked and the appointment confirmed in one
// transactional write. Calling it on an already confirmed appointment is
// idempotent. A gateway failure leaves the appointment PENDING with
// payment.status FAILED, so the caller may retry.
func (s *DefaultSchedulingService) PayAndConfirm(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("appointment not found")
		}
		return nil, err
	}

	if appt.Status == models.AppointmentConfirmed {
		return appt, nil
	}

	req := models.PaymentRequest{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Amount:        appt.Amount,
		Currency:      currency(),
		Description:   fmt.Sprintf("Consultation appointment %s", appt.ID),
		Metadata: map[string]string{
			"doctorId":  appt.DoctorID,
			"patientId": appt.PatientID,
		},
	}

	receipt, err := s.Gateway.Charge(ctx, req)
	if err != nil {
		logger.Warn("payment attempt declined",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		if ferr := s.Appointments.SetPaymentFailed(ctx, appt.ID, providerName()); ferr != nil {
			logger.Error("failed to persist payment failure",
				zap.String("appointmentId", appt.ID), zap.Error(ferr))
		}
		return nil, NewPaymentFailedError("payment failed, try again")
	}

	confirmed, err := s.Scheduler.ConfirmBooking(ctx, appt.ID, appt.AvailabilityID, receipt.Provider, receipt.TxnRef)
	if err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, confirmed)

	logger.Info("appointment confirmed",
		zap.String("appointmentId", confirmed.ID),
		zap.String("txnRef", receipt.TxnRef))
	return confirmed, nil
}

// scheduleReminder is best effort: a reminder that cannot be enqueued never
// fails a confirmed booking.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	slot, err := s.Slots.GetByID(ctx, appt.AvailabilityID)
	if err != nil {
		utils.GetLogger().Warn("reminder skipped, slot lookup failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt, slot); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func currency() string {
	if c := config.AppConfig.Currency; c != "" {
		return c
	}
	return "usd"
}

func providerName() string {
	if config.AppConfig.PaymentMode == "stripe" {
		return "stripe"
	}
	return "simulated"
}
