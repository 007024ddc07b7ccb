package scheduling

import (
	"context"

	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	doctorRepo "clinicore/database/repository/doctor"
	schedulerRepo "clinicore/database/repository/scheduler"
	"clinicore/models"

	"github.com/go-redis/redis/v8"
)

// Service is the sole authority on booking and payment confirmation. It
// mediates every state change to Availability and Appointment records.
type Service interface {
	ListSpecialties(ctx context.Context) ([]string, error)
	ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.DoctorProfile, error)
	ListSlots(ctx context.Context, doctorID, dateISO string) ([]models.Availability, error)
	HoldSlot(ctx context.Context, slotID string) (*models.Availability, error)
	CreateAppointment(ctx context.Context, patientID, doctorID, slotID string) (*models.Appointment, error)
	PayAndConfirm(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

// ReminderScheduler enqueues an appointment reminder after confirmation.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment, slot *models.Availability) error
}

// DefaultSchedulingService is the production implementation, instantiated once
// at startup with constructor-injected store handles.
type DefaultSchedulingService struct {
	Slots        availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Scheduler    schedulerRepo.SchedulerRepository
	Doctors      doctorRepo.DoctorRepository
	Gateway      PaymentGateway
	Cache        *redis.Client     // optional; caches the specialties list
	Reminders    ReminderScheduler // optional; nil disables reminders
}
