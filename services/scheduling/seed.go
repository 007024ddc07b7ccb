package scheduling

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
)

// SlotSeeder creates availability slots; used by the admin/doctor seeding
// surface. The scheduling service is the only writer to the slot store, so
// seeding lives here too.
type SlotSeeder interface {
	SeedSlots(ctx context.Context, doctorID string, req models.SeedAvailabilitiesRequest) ([]models.Availability, error)
}

// SeedSlots normalizes and persists a batch of slots for a doctor. Duplicate
// (doctor, date, startTime) triples are rejected by the unique index.
func (s *DefaultSchedulingService) SeedSlots(ctx context.Context, doctorID string, req models.SeedAvailabilitiesRequest) ([]models.Availability, error) {
	if doctorID == "" {
		return nil, NewUnauthorizedError("missing doctor identity")
	}
	if len(req.Slots) == 0 {
		return []models.Availability{}, nil
	}

	slots := make([]models.Availability, 0, len(req.Slots))
	for _, in := range req.Slots {
		day, err := normalizeDay(in.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", in.Date, err)
		}
		if _, err := time.Parse("15:04", in.StartTime); err != nil {
			return nil, fmt.Errorf("invalid start time %q: %w", in.StartTime, err)
		}
		if _, err := time.Parse("15:04", in.EndTime); err != nil {
			return nil, fmt.Errorf("invalid end time %q: %w", in.EndTime, err)
		}
		slots = append(slots, models.Availability{
			DoctorID:  doctorID,
			Date:      day,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	ids, err := s.Slots.CreateMany(ctx, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to seed slots: %w", err)
	}
	for i := range slots {
		slots[i].ID = ids[i]
	}
	return slots, nil
}
