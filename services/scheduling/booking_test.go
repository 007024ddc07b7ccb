package scheduling

import (
	"context"
	"testing"

	"clinicore/models"
)

func seedDoctorAndSlot(slots *fakeSlotRepo, doctors *fakeDoctorRepo) {
	doctors.put(
		models.Doctor{ID: "d1", UserID: "u1", Specialization: "Cardiology", Fee: 4500},
		models.User{ID: "u1", Name: "Dr. Achebe", Email: "achebe@clinic.test"},
	)
	slots.put(models.Availability{
		ID:        "s1",
		DoctorID:  "d1",
		Date:      localDay(2025, 1, 10),
		StartTime: "09:00",
		EndTime:   "09:30",
	})
}

func TestCreateAppointmentPending(t *testing.T) {
	slots := newFakeSlotRepo()
	doctors := newFakeDoctorRepo()
	seedDoctorAndSlot(slots, doctors)
	svc := newTestService(slots, newFakeApptRepo(), doctors, &countingGateway{})

	appt, err := svc.CreateAppointment(context.Background(), "p1", "d1", "s1")
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Errorf("status = %s, want PENDING", appt.Status)
	}
	if appt.Payment.Status != models.PaymentNone {
		t.Errorf("payment status = %s, want NONE", appt.Payment.Status)
	}
	if appt.Amount != 4500 {
		t.Errorf("amount = %d, want doctor fee 4500", appt.Amount)
	}
	if appt.AvailabilityID != "s1" {
		t.Errorf("availabilityId = %s, want s1", appt.AvailabilityID)
	}
}

func TestCreateAppointmentMissingPatient(t *testing.T) {
	svc := newTestService(newFakeSlotRepo(), newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	_, err := svc.CreateAppointment(context.Background(), "", "d1", "s1")
	if StatusOf(err) != 401 {
		t.Errorf("status = %d, want 401", StatusOf(err))
	}
}

func TestCreateAppointmentSlotMissingOrBooked(t *testing.T) {
	slots := newFakeSlotRepo()
	slots.put(models.Availability{ID: "booked", DoctorID: "d1", IsBooked: true})
	svc := newTestService(slots, newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	if _, err := svc.CreateAppointment(context.Background(), "p1", "d1", "missing"); StatusOf(err) != 409 {
		t.Errorf("missing slot: status = %d, want 409", StatusOf(err))
	}
	if _, err := svc.CreateAppointment(context.Background(), "p1", "d1", "booked"); StatusOf(err) != 409 {
		t.Errorf("booked slot: status = %d, want 409", StatusOf(err))
	}
}

func TestCreateAppointmentDoubleBookOneWinner(t *testing.T) {
	slots := newFakeSlotRepo()
	doctors := newFakeDoctorRepo()
	seedDoctorAndSlot(slots, doctors)
	svc := newTestService(slots, newFakeApptRepo(), doctors, &countingGateway{})

	_, err1 := svc.CreateAppointment(context.Background(), "p1", "d1", "s1")
	_, err2 := svc.CreateAppointment(context.Background(), "p2", "d1", "s1")

	if err1 != nil {
		t.Fatalf("first create should win: %v", err1)
	}
	if StatusOf(err2) != 409 {
		t.Errorf("second create: status = %d, want 409", StatusOf(err2))
	}
}

func TestPayAndConfirmHappyPath(t *testing.T) {
	slots := newFakeSlotRepo()
	doctors := newFakeDoctorRepo()
	seedDoctorAndSlot(slots, doctors)
	gw := &countingGateway{}
	svc := newTestService(slots, newFakeApptRepo(), doctors, gw)
	ctx := context.Background()

	listed, err := svc.ListSlots(ctx, "d1", "2025-01-10")
	if err != nil || len(listed) != 1 || listed[0].ID != "s1" {
		t.Fatalf("ListSlots = %v, %v; want [s1]", listed, err)
	}

	appt, err := svc.CreateAppointment(ctx, "p1", "d1", "s1")
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	confirmed, err := svc.PayAndConfirm(ctx, appt.ID)
	if err != nil {
		t.Fatalf("PayAndConfirm failed: %v", err)
	}
	if confirmed.Status != models.AppointmentConfirmed {
		t.Errorf("status = %s, want CONFIRMED", confirmed.Status)
	}
	if confirmed.Payment.Status != models.PaymentSuccess {
		t.Errorf("payment status = %s, want SUCCESS", confirmed.Payment.Status)
	}
	if confirmed.Payment.TxnRef == "" {
		t.Error("expected a transaction reference")
	}

	slot, err := slots.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("slot lookup failed: %v", err)
	}
	if !slot.IsBooked || slot.HoldUntil != nil {
		t.Errorf("slot after confirm = %+v, want booked with no hold", slot)
	}
}

func TestPayAndConfirmIdempotent(t *testing.T) {
	slots := newFakeSlotRepo()
	doctors := newFakeDoctorRepo()
	seedDoctorAndSlot(slots, doctors)
	gw := &countingGateway{}
	svc := newTestService(slots, newFakeApptRepo(), doctors, gw)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, "p1", "d1", "s1")
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	first, err := svc.PayAndConfirm(ctx, appt.ID)
	if err != nil {
		t.Fatalf("first PayAndConfirm failed: %v", err)
	}
	second, err := svc.PayAndConfirm(ctx, appt.ID)
	if err != nil {
		t.Fatalf("second PayAndConfirm failed: %v", err)
	}

	if gw.charges != 1 {
		t.Errorf("gateway charged %d times, want 1", gw.charges)
	}
	if second.Status != models.AppointmentConfirmed || second.Payment.TxnRef != first.Payment.TxnRef {
		t.Errorf("second call = %+v, want the same confirmed record", second)
	}
}

func TestPayAndConfirmFailureRetryable(t *testing.T) {
	slots := newFakeSlotRepo()
	doctors := newFakeDoctorRepo()
	seedDoctorAndSlot(slots, doctors)
	appts := newFakeApptRepo()
	gw := &countingGateway{declines: 1}
	svc := newTestService(slots, appts, doctors, gw)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, "p1", "d1", "s1")
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	_, err = svc.PayAndConfirm(ctx, appt.ID)
	if StatusOf(err) != 402 {
		t.Fatalf("declined payment: status = %d, want 402", StatusOf(err))
	}

	afterFail, err := appts.GetByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("appointment lookup failed: %v", err)
	}
	if afterFail.Status != models.AppointmentPending {
		t.Errorf("status after decline = %s, want PENDING", afterFail.Status)
	}
	if afterFail.Payment.Status != models.PaymentFailed {
		t.Errorf("payment status after decline = %s, want FAILED", afterFail.Payment.Status)
	}

	// The retry goes through.
	confirmed, err := svc.PayAndConfirm(ctx, appt.ID)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if confirmed.Status != models.AppointmentConfirmed || confirmed.Payment.Status != models.PaymentSuccess {
		t.Errorf("after retry = %+v, want CONFIRMED/SUCCESS", confirmed)
	}
}

func TestPayAndConfirmNotFound(t *testing.T) {
	svc := newTestService(newFakeSlotRepo(), newFakeApptRepo(), newFakeDoctorRepo(), &countingGateway{})

	_, err := svc.PayAndConfirm(context.Background(), "nope")
	if StatusOf(err) != 404 {
		t.Errorf("status = %d, want 404", StatusOf(err))
	}
}
