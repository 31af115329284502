package appointment

import (
	"context"
	"sync"
	"time"

	userdomain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/notify"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type fakeAppointments struct {
	findByIDFn     func(ctx context.Context, id, customerID string) (*models.Appointment, error)
	findConflictFn func(ctx context.Context, providerID string, scheduleDate time.Time, excludeID string) ([]models.Appointment, error)
	listFn         func(ctx context.Context, customerID string, params pagination.Params) (pagination.Envelope[models.Appointment], error)
	createFn       func(ctx context.Context, ap *models.Appointment) error
	updateFn       func(ctx context.Context, ap *models.Appointment) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeAppointments) FindByID(ctx context.Context, id, customerID string) (*models.Appointment, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, id, customerID)
}

func (f *fakeAppointments) FindConflict(ctx context.Context, providerID string, scheduleDate time.Time, excludeID string) ([]models.Appointment, error) {
	if f.findConflictFn == nil {
		panic("FindConflict not configured")
	}
	return f.findConflictFn(ctx, providerID, scheduleDate, excludeID)
}

func (f *fakeAppointments) List(ctx context.Context, customerID string, params pagination.Params) (pagination.Envelope[models.Appointment], error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, customerID, params)
}

func (f *fakeAppointments) Create(ctx context.Context, ap *models.Appointment) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, ap)
}

func (f *fakeAppointments) Update(ctx context.Context, ap *models.Appointment) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, ap)
}

func (f *fakeAppointments) Delete(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

type fakeUsers struct {
	findByIDFn    func(ctx context.Context, id string) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findByEmailFn == nil {
		panic("FindByEmail not configured")
	}
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUsers) List(ctx context.Context, search userdomain.SearchParams, params pagination.Params) (pagination.Envelope[models.User], error) {
	panic("List not configured")
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) error {
	panic("Create not configured")
}

func (f *fakeUsers) Update(ctx context.Context, u *models.User) error {
	panic("Update not configured")
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	panic("Delete not configured")
}

// capturePublisher records every publish, optionally failing them all.
type capturePublisher struct {
	mu        sync.Mutex
	published []notify.Channel
	err       error
}

func (p *capturePublisher) Publish(ctx context.Context, channel notify.Channel, msg notify.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, channel)
	return p.err
}

func (p *capturePublisher) channels() []notify.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]notify.Channel, len(p.published))
	copy(out, p.published)
	return out
}
