package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clinicore/config"
	"clinicore/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	Date          string `json:"date"`      // "YYYY-MM-DD"
	StartTime     string `json:"startTime"` // "HH:MM"
}

// ReminderClient enqueues reminder tasks onto the asynq queue.
type ReminderClient struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewReminderClient constructs an asynq-backed reminder client.
func NewReminderClient(logger *zap.Logger) *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(redisOpts()),
		logger: logger,
	}
}

// ScheduleReminder enqueues a reminder delivered ahead of the slot start. A
// slot already too close to start gets the reminder immediately.
func (c *ReminderClient) ScheduleReminder(ctx context.Context, appt *models.Appointment, slot *models.Availability) error {
	payload := ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		Date:          slot.Date.Format("2006-01-02"),
		StartTime:     slot.StartTime,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	at := reminderTime(slot)
	task := asynq.NewTask(TypeAppointmentReminder, data)

	var opts []asynq.Option
	if at.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(at))
	}
	info, err := c.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	c.logger.Info("reminder enqueued",
		zap.String("appointmentId", appt.ID),
		zap.String("taskId", info.ID),
		zap.Time("deliverAt", at))
	return nil
}

// Close releases the underlying asynq client.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(logger *zap.Logger) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(logger))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
		}

		// Actual delivery (email/SMS) happens in the notification pipeline;
		// here the reminder is surfaced to the log stream.
		logger.Info("appointment reminder due",
			zap.String("appointmentId", payload.AppointmentID),
			zap.String("patientId", payload.PatientID),
			zap.String("date", payload.Date),
			zap.String("startTime", payload.StartTime))
		return nil
	}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	}
}

// reminderTime computes slot start minus the configured lead, in server-local time.
func reminderTime(slot *models.Availability) time.Time {
	lead := time.Duration(config.AppConfig.ReminderLeadHr) * time.Hour
	if lead <= 0 {
		lead = time.Hour
	}

	start := slot.Date
	if t, err := time.Parse("15:04", slot.StartTime); err == nil {
		start = start.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return start.Add(-lead)
}
