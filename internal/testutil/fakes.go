// Package testutil provides in-memory store fakes for service and
// handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
)

// FakeUserStore implements repository.UserStore over a map.
type FakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]models.User)}
}

func (f *FakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *FakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = models.RoleAdmin
	}
	f.users[user.Username] = *user
	return nil
}

// FakeContactStore implements repository.ContactStore over a slice.
type FakeContactStore struct {
	mu         sync.Mutex
	contacts   []models.Contact
	CountCalls int
}

func NewFakeContactStore() *FakeContactStore {
	return &FakeContactStore{}
}

func (f *FakeContactStore) List(ctx context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Contact, len(f.contacts))
	copy(out, f.contacts)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeContactStore) Create(ctx context.Context, contact *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *FakeContactStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contacts {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeContactStore) Save(ctx context.Context, contact *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.contacts {
		if c.ID == contact.ID {
			f.contacts[i] = *contact
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.contacts {
		if c.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeContactStore) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CountCalls++
	return int64(len(f.contacts)), nil
}

func (f *FakeContactStore) CountByStatus(ctx context.Context, status models.ContactStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.contacts {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

// FakeAppointmentStore implements repository.AppointmentStore over a slice.
type FakeAppointmentStore struct {
	mu         sync.Mutex
	appts      []models.Appointment
	CountCalls int
}

func NewFakeAppointmentStore() *FakeAppointmentStore {
	return &FakeAppointmentStore{}
}

func (f *FakeAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, len(f.appts))
	copy(out, f.appts)
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.Before(out[j].AppointmentDate) })
	return out, nil
}

func (f *FakeAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *FakeAppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appts {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeAppointmentStore) Save(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.appts {
		if a.ID == appt.ID {
			f.appts[i] = *appt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.appts {
		if a.ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeAppointmentStore) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CountCalls++
	return int64(len(f.appts)), nil
}

func (f *FakeAppointmentStore) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.appts {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *FakeAppointmentStore) CountUpcoming(ctx context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.appts {
		if a.AppointmentDate.Before(since) {
			continue
		}
		if a.Status == models.AppointmentStatusPending || a.Status == models.AppointmentStatusConfirmed {
			n++
		}
	}
	return n, nil
}

// FakeSlotStore implements repository.SlotStore over a slice.
type FakeSlotStore struct {
	mu    sync.Mutex
	slots []models.SurgerySlot
}

func NewFakeSlotStore() *FakeSlotStore {
	return &FakeSlotStore{}
}

func (f *FakeSlotStore) List(ctx context.Context) ([]models.SurgerySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SurgerySlot, len(f.slots))
	copy(out, f.slots)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *FakeSlotStore) Create(ctx context.Context, slot *models.SurgerySlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *FakeSlotStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeSlotStore) Covering(ctx context.Context, at time.Time) ([]models.SurgerySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SurgerySlot
	for _, s := range f.slots {
		if s.Covers(at) {
			out = append(out, s)
		}
	}
	return out, nil
}
