package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinicore/config"
	availabilityRepo "clinicore/database/repository/availability"
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

const specialtiesCacheKey = "scheduling:specialties"

// ListSpecialties returns the distinct set of doctor specializations, sorted
// ascending. The list is cached briefly since it changes rarely.
func (s *DefaultSchedulingService) ListSpecialties(ctx context.Context) ([]string, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, specialtiesCacheKey).Result(); err == nil {
			var specialties []string
			if err := json.Unmarshal([]byte(cached), &specialties); err == nil {
				return specialties, nil
			}
		}
	}

	specialties, err := s.Doctors.ListSpecialties(ctx)
	if err != nil {
		return nil, err
	}
	if specialties == nil {
		specialties = []string{}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(specialties); err == nil {
			if err := s.Cache.Set(ctx, specialtiesCacheKey, data, time.Minute).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache specialties", zap.Error(err))
			}
		}
	}
	return specialties, nil
}

// ListDoctorsBySpecialty returns doctors matching the given specialization with
// the owning user's display name and email joined in. An empty specialty yields
// an empty result, not an error.
func (s *DefaultSchedulingService) ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.DoctorProfile, error) {
	if specialty == "" {
		return []models.DoctorProfile{}, nil
	}
	profiles, err := s.Doctors.ListBySpecialty(ctx, specialty)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.DoctorProfile{}
	}
	return profiles, nil
}

// ListSlots returns unbooked slots for the doctor on the given calendar day,
// ordered by start time. The date is normalized to midnight local-server time;
// a missing doctor ID or an unparseable date degrades to an empty list.
func (s *DefaultSchedulingService) ListSlots(ctx context.Context, doctorID, dateISO string) ([]models.Availability, error) {
	if doctorID == "" || dateISO == "" {
		return []models.Availability{}, nil
	}
	day, err := normalizeDay(dateISO)
	if err != nil {
		return []models.Availability{}, nil
	}

	slots, err := s.Slots.GetOpenByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.Availability{}
	}
	return slots, nil
}

// HoldSlot places a short-lived soft lock on an unbooked slot whose existing
// hold, if any, has expired. The repository resolves the race between two
// simultaneous holders with a single conditional write.
func (s *DefaultSchedulingService) HoldSlot(ctx context.Context, slotID string) (*models.Availability, error) {
	if slotID == "" {
		return nil, NewSlotUnavailableError("missing slot id")
	}

	slot, err := s.Slots.Hold(ctx, slotID, time.Now(), holdDuration())
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotTaken) {
			return nil, NewSlotUnavailableError("slot is already booked or held, pick another")
		}
		return nil, err
	}
	return slot, nil
}

func holdDuration() time.Duration {
	if m := config.AppConfig.HoldMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return 5 * time.Minute
}

// normalizeDay parses "YYYY-MM-DD" as midnight in the server's local timezone.
// Callers must send the day matching the server's local calendar, not UTC-shifted.
func normalizeDay(dateISO string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateISO, time.Local)
}
