package database

import (
	"errors"
	"sort"
	"sync"
	"time"

	"healthhub/models"
)

// Sentinel errors surfaced by the store. Services map these onto their
// own error taxonomies.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrSlotTaken = errors.New("slot already booked")
)

// MemoryStore holds every collection behind one mutex. All compound
// check-then-act sequences (booking conflict check + insert, waitlist
// append + notification insert) run inside a single critical section,
// so concurrent callers cannot interleave between check and mutation.
// Reads hand out copies; callers never see live internal state.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[string]models.User
	hospitals     map[string]models.Hospital
	specialists   map[string]models.Specialist
	appointments  map[string]models.Appointment
	vaccines      map[string]models.Vaccine
	notifications map[string]models.Notification
	sessions      map[string]models.TelemedicineSession
	records       []models.MedicalRecord
	treatments    []models.ActiveTreatment
}

// NewMemoryStore returns an empty store. Call Seed to load the demo
// dataset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]models.User),
		hospitals:     make(map[string]models.Hospital),
		specialists:   make(map[string]models.Specialist),
		appointments:  make(map[string]models.Appointment),
		vaccines:      make(map[string]models.Vaccine),
		notifications: make(map[string]models.Notification),
		sessions:      make(map[string]models.TelemedicineSession),
	}
}

// ---- users ----

func (s *MemoryStore) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// UpdateUser applies fn to the stored user under the lock.
func (s *MemoryStore) UpdateUser(id string, fn func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	fn(&u)
	s.users[id] = u
	return u, nil
}

// ---- hospitals & specialists ----

func (s *MemoryStore) GetHospital(id string) (models.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hospitals[id]
	if !ok {
		return models.Hospital{}, ErrNotFound
	}
	return h, nil
}

func (s *MemoryStore) ListHospitals() []models.Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) PutHospital(h models.Hospital) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hospitals[h.ID] = h
}

func (s *MemoryStore) GetSpecialist(id string) (models.Specialist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.specialists[id]
	if !ok {
		return models.Specialist{}, ErrNotFound
	}
	sp.Slots = append([]time.Time(nil), sp.Slots...)
	return sp, nil
}

func (s *MemoryStore) ListSpecialists() []models.Specialist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Specialist, 0, len(s.specialists))
	for _, sp := range s.specialists {
		sp.Slots = append([]time.Time(nil), sp.Slots...)
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) PutSpecialist(sp models.Specialist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specialists[sp.ID] = sp
}

// ---- appointments ----

func (s *MemoryStore) GetAppointment(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *MemoryStore) AppointmentsByPatient(patientID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemoryStore) AppointmentsBySpecialist(specialistID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.SpecialistID == specialistID {
			out = append(out, a)
		}
	}
	return out
}

// InsertAppointmentIfFree inserts the appointment unless another
// non-canceled appointment for the same specialist occupies the same
// instant. Check and insert share the critical section; two concurrent
// bookings of one slot can never both succeed.
func (s *MemoryStore) InsertAppointmentIfFree(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.appointments {
		if existing.SpecialistID == a.SpecialistID &&
			existing.Status != models.AppointmentCanceled &&
			existing.Time.Equal(a.Time) {
			return ErrSlotTaken
		}
	}
	s.appointments[a.ID] = a
	return nil
}

// UpdateAppointment applies fn to the stored appointment under the
// lock. fn returning an error leaves the record untouched.
func (s *MemoryStore) UpdateAppointment(id string, fn func(*models.Appointment) error) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	if err := fn(&a); err != nil {
		return models.Appointment{}, err
	}
	s.appointments[id] = a
	return a, nil
}

func (s *MemoryStore) PutAppointment(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

// ---- vaccines & waitlists ----

func (s *MemoryStore) GetVaccine(id string) (models.Vaccine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vaccines[id]
	if !ok {
		return models.Vaccine{}, ErrNotFound
	}
	v.Waitlist = append([]string(nil), v.Waitlist...)
	return v, nil
}

func (s *MemoryStore) ListVaccines() []models.Vaccine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vaccine, 0, len(s.vaccines))
	for _, v := range s.vaccines {
		v.Waitlist = append([]string(nil), v.Waitlist...)
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) PutVaccine(v models.Vaccine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vaccines[v.ID] = v
}

// JoinWaitlist appends userID to the vaccine's waitlist and records the
// given notification as one unit. A caller can never observe the join
// without its notification, or a duplicate waitlist entry.
func (s *MemoryStore) JoinWaitlist(vaccineID, userID string, note models.Notification) (models.Vaccine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vaccines[vaccineID]
	if !ok {
		return models.Vaccine{}, ErrNotFound
	}
	for _, id := range v.Waitlist {
		if id == userID {
			return models.Vaccine{}, ErrDuplicate
		}
	}
	v.Waitlist = append(v.Waitlist, userID)
	s.vaccines[vaccineID] = v
	s.notifications[note.ID] = note

	v.Waitlist = append([]string(nil), v.Waitlist...)
	return v, nil
}

// ---- notifications ----

func (s *MemoryStore) InsertNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = n
}

func (s *MemoryStore) NotificationsByUser(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out
}

// MarkNotificationRead flips the read flag to true. Marking an already
// read notification succeeds without change; the flag never goes back.
func (s *MemoryStore) MarkNotificationRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return models.Notification{}, ErrNotFound
	}
	n.Read = true
	s.notifications[id] = n
	return n, nil
}

// MarkAllNotificationsRead marks every unread notification for the user
// and reports how many transitioned.
func (s *MemoryStore) MarkAllNotificationsRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for id, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			s.notifications[id] = n
			count++
		}
	}
	return count
}

func (s *MemoryStore) UnreadNotificationCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// ---- telemedicine ----

func (s *MemoryStore) GetSession(id string) (models.TelemedicineSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.TelemedicineSession{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) SessionsByPatient(patientID string) []models.TelemedicineSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TelemedicineSession
	for _, sess := range s.sessions {
		if sess.PatientID == patientID {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out
}

func (s *MemoryStore) PutSession(sess models.TelemedicineSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// UpdateSession applies fn to the stored session under the lock.
func (s *MemoryStore) UpdateSession(id string, fn func(*models.TelemedicineSession) error) (models.TelemedicineSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.TelemedicineSession{}, ErrNotFound
	}
	if err := fn(&sess); err != nil {
		return models.TelemedicineSession{}, err
	}
	s.sessions[id] = sess
	return sess, nil
}

// ---- medical history ----

func (s *MemoryStore) RecordsByPatient(patientID string) []models.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MedicalRecord
	for _, r := range s.records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *MemoryStore) AddRecord(r models.MedicalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

func (s *MemoryStore) TreatmentsByPatient(patientID string) []models.ActiveTreatment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ActiveTreatment
	for _, t := range s.treatments {
		if t.PatientID == patientID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out
}

func (s *MemoryStore) AddTreatment(t models.ActiveTreatment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.treatments = append(s.treatments, t)
}
