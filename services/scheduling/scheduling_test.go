package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	"clinicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes mirroring the Mongo repositories' conditional-update
// semantics, shared by the tests in this package.

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.Availability
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.Availability)}
}

func (f *fakeSlotRepo) put(slot models.Availability) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := slot
	f.slots[s.ID] = &s
}

func (f *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.Availability) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		ids[i] = slot.ID
		s := slot
		f.slots[s.ID] = &s
	}
	return ids, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) GetOpenByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Availability
	for _, s := range f.slots {
		if s.DoctorID == doctorID && s.Date.Equal(date) && !s.IsBooked {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

// Hold emulates Mongo's single-document conditional update under a lock.
func (f *fakeSlotRepo) Hold(ctx context.Context, slotID string, now time.Time, holdFor time.Duration) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[slotID]
	if !ok || s.IsBooked || (s.HoldUntil != nil && !s.HoldUntil.Before(now)) {
		return nil, availabilityRepo.ErrSlotTaken
	}
	until := now.Add(holdFor)
	s.HoldUntil = &until
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) EnsureIndexes() error { return nil }

type fakeApptRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.appts {
		if existing.AvailabilityID == appt.AvailabilityID {
			return appointmentRepo.ErrSlotAlreadyBooked
		}
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	cp := *appt
	f.appts[cp.ID] = &cp
	return nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, apptID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[apptID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApptRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) SetPaymentFailed(ctx context.Context, apptID, provider string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[apptID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Payment.Provider = provider
	a.Payment.Status = models.PaymentFailed
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeApptRepo) ReportByStatusAndSpecialty(ctx context.Context, from, to time.Time) ([]models.AppointmentReportRow, error) {
	return nil, nil
}

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

// fakeSchedulerRepo applies both confirmation writes against the fake stores.
type fakeSchedulerRepo struct {
	slots *fakeSlotRepo
	appts *fakeApptRepo
}

func (f *fakeSchedulerRepo) ConfirmBooking(ctx context.Context, apptID, slotID, provider, txnRef string) (*models.Appointment, error) {
	f.slots.mu.Lock()
	if s, ok := f.slots.slots[slotID]; ok {
		s.IsBooked = true
		s.HoldUntil = nil
	}
	f.slots.mu.Unlock()

	f.appts.mu.Lock()
	defer f.appts.mu.Unlock()
	a, ok := f.appts.appts[apptID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	a.Status = models.AppointmentConfirmed
	a.Payment.Provider = provider
	a.Payment.Status = models.PaymentSuccess
	a.Payment.TxnRef = txnRef
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

type fakeDoctorRepo struct {
	mu      sync.Mutex
	doctors map[string]*models.Doctor
	users   map[string]*models.User // keyed by user ID, for profile joins
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{
		doctors: make(map[string]*models.Doctor),
		users:   make(map[string]*models.User),
	}
}

func (f *fakeDoctorRepo) put(doc models.Doctor, owner models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := doc
	u := owner
	f.doctors[d.ID] = &d
	f.users[u.ID] = &u
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doc *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	cp := *doc
	f.doctors[cp.ID] = &cp
	return nil
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[doctorID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.doctors {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) ListSpecialties(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, d := range f.doctors {
		if d.Specialization != "" && !seen[d.Specialization] {
			seen[d.Specialization] = true
			out = append(out, d.Specialization)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeDoctorRepo) ListBySpecialty(ctx context.Context, specialty string) ([]models.DoctorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DoctorProfile
	for _, d := range f.doctors {
		if d.Specialization != specialty {
			continue
		}
		p := models.DoctorProfile{Doctor: *d}
		if u, ok := f.users[d.UserID]; ok {
			p.Name = u.Name
			p.Email = u.Email
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeDoctorRepo) EnsureIndexes() error { return nil }

// countingGateway wraps a gateway outcome and counts charges.
type countingGateway struct {
	mu       sync.Mutex
	charges  int
	declines int // decline the first N charges
}

func (g *countingGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges++
	if g.declines > 0 {
		g.declines--
		return nil, errDeclined
	}
	return &models.PaymentReceipt{
		Provider:    "simulated",
		TxnRef:      "sim_" + uuid.New().String(),
		Amount:      req.Amount,
		Currency:    req.Currency,
		ProcessedAt: time.Now(),
	}, nil
}

var errDeclined = &Error{Code: "gatewayDeclined", Status: 402, Message: "card declined"}

func newTestService(slots *fakeSlotRepo, appts *fakeApptRepo, doctors *fakeDoctorRepo, gw PaymentGateway) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Slots:        slots,
		Appointments: appts,
		Scheduler:    &fakeSchedulerRepo{slots: slots, appts: appts},
		Doctors:      doctors,
		Gateway:      gw,
	}
}

func localDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
