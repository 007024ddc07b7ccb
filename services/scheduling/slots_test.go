package scheduling

import (
	"context"
	"testing"
	"time"

	"clinicore/models"
)

func TestHoldSlotFresh(t *testing.T) {
	slots := newFakeSlotRepo()
	slots.put(models.Availability{
		ID:        "s1",
		DoctorID:  "d1",
		Date:      localDay(2025, 1, 10),
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	before := time.Now()
	slot, err := svc.HoldSlot(context.Background(), "s1")
	if err != nil {
		t.Fatalf("HoldSlot failed: %v", err)
	}
	if slot.HoldUntil == nil {
		t.Fatal("expected holdUntil to be set")
	}
	want := before.Add(5 * time.Minute)
	if diff := slot.HoldUntil.Sub(want); diff < -time.Second || diff > time.Second {
		t.Errorf("holdUntil = %v, want approximately %v", slot.HoldUntil, want)
	}
}

func TestHoldSlotAlreadyHeld(t *testing.T) {
	future := time.Now().Add(3 * time.Minute)
	slots := newFakeSlotRepo()
	slots.put(models.Availability{ID: "s1", DoctorID: "d1", HoldUntil: &future})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	_, err := svc.HoldSlot(context.Background(), "s1")
	if err == nil {
		t.Fatal("expected hold on a held slot to fail")
	}
	if StatusOf(err) != 409 {
		t.Errorf("status = %d, want 409", StatusOf(err))
	}
}

func TestHoldSlotExpiredHold(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	slots := newFakeSlotRepo()
	slots.put(models.Availability{ID: "s1", DoctorID: "d1", HoldUntil: &past})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	slot, err := svc.HoldSlot(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected expired hold to be reclaimable, got %v", err)
	}
	if slot.HoldUntil == nil || !slot.HoldUntil.After(time.Now()) {
		t.Error("expected a fresh unexpired hold")
	}
}

func TestHoldSlotBooked(t *testing.T) {
	slots := newFakeSlotRepo()
	slots.put(models.Availability{ID: "s1", DoctorID: "d1", IsBooked: true})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	if _, err := svc.HoldSlot(context.Background(), "s1"); StatusOf(err) != 409 {
		t.Errorf("status = %d, want 409", StatusOf(err))
	}
}

func TestListSlotsMissingArgs(t *testing.T) {
	svc := newTestService(newFakeSlotRepo(), newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	for _, tc := range []struct{ doctorID, date string }{
		{"", "2025-01-10"},
		{"d1", ""},
		{"d1", "not-a-date"},
	} {
		slots, err := svc.ListSlots(context.Background(), tc.doctorID, tc.date)
		if err != nil {
			t.Errorf("ListSlots(%q, %q) returned error: %v", tc.doctorID, tc.date, err)
		}
		if len(slots) != 0 {
			t.Errorf("ListSlots(%q, %q) = %v, want empty", tc.doctorID, tc.date, slots)
		}
	}
}

func TestListSlotsOrdering(t *testing.T) {
	day := localDay(2025, 1, 10)
	slots := newFakeSlotRepo()
	slots.put(models.Availability{ID: "late", DoctorID: "d1", Date: day, StartTime: "11:00", EndTime: "11:30"})
	slots.put(models.Availability{ID: "early", DoctorID: "d1", Date: day, StartTime: "09:00", EndTime: "09:30"})
	slots.put(models.Availability{ID: "booked", DoctorID: "d1", Date: day, StartTime: "10:00", EndTime: "10:30", IsBooked: true})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	got, err := svc.ListSlots(context.Background(), "d1", "2025-01-10")
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Errorf("ListSlots order = %v, want [early late]", got)
	}
}

func TestListSpecialtiesDeduplicatedSorted(t *testing.T) {
	doctors := newFakeDoctorRepo()
	doctors.put(models.Doctor{ID: "d1", UserID: "u1", Specialization: "Cardiology"}, models.User{ID: "u1"})
	doctors.put(models.Doctor{ID: "d2", UserID: "u2", Specialization: "Pediatrics"}, models.User{ID: "u2"})
	doctors.put(models.Doctor{ID: "d3", UserID: "u3", Specialization: "Cardiology"}, models.User{ID: "u3"})
	svc := newTestService(newFakeSlotRepo(), newFakeApptRepo(), doctors, &countingGateway{})

	got, err := svc.ListSpecialties(context.Background())
	if err != nil {
		t.Fatalf("ListSpecialties failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Cardiology" || got[1] != "Pediatrics" {
		t.Errorf("ListSpecialties = %v, want [Cardiology Pediatrics]", got)
	}
}

func TestListDoctorsBySpecialtyJoinsOwner(t *testing.T) {
	doctors := newFakeDoctorRepo()
	doctors.put(
		models.Doctor{ID: "d1", UserID: "u1", Specialization: "Cardiology", Fee: 4000},
		models.User{ID: "u1", Name: "Dr. Achebe", Email: "achebe@clinic.test"},
	)
	svc := newTestService(newFakeSlotRepo(), newFakeApptRepo(), doctors, &countingGateway{})

	got, err := svc.ListDoctorsBySpecialty(context.Background(), "Cardiology")
	if err != nil {
		t.Fatalf("ListDoctorsBySpecialty failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Dr. Achebe" || got[0].Email != "achebe@clinic.test" {
		t.Errorf("profile join = %+v", got)
	}

	empty, err := svc.ListDoctorsBySpecialty(context.Background(), "")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty specialty should yield empty result, got %v, %v", empty, err)
	}
}
