package appointment

import (
	"context"
	"testing"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

func TestGetNotFound(t *testing.T) {
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return nil, domain.ErrNotFound
		},
	}

	uc := NewGetAppointment(appointments)

	_, err := uc.Execute(context.Background(), appointmentID, customerID)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("error = %v, want appointment_not_found", err)
	}
}

func TestRemoveNotFoundDeletesNothing(t *testing.T) {
	deleted := false
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return nil, domain.ErrNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}

	uc := NewRemoveAppointment(appointments)

	err := uc.Execute(context.Background(), appointmentID, customerID)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("error = %v, want appointment_not_found", err)
	}
	if deleted {
		t.Fatal("delete must not run for a missing appointment")
	}
}

func TestRemoveDeletesOwnedAppointment(t *testing.T) {
	var deletedID string
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	uc := NewRemoveAppointment(appointments)

	if err := uc.Execute(context.Background(), appointmentID, customerID); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if deletedID != appointmentID {
		t.Fatalf("deleted id = %q, want %q", deletedID, appointmentID)
	}
}

func TestListPassesParamsThrough(t *testing.T) {
	var gotCustomer string
	var gotParams pagination.Params

	appointments := &fakeAppointments{
		listFn: func(ctx context.Context, customerID string, params pagination.Params) (pagination.Envelope[models.Appointment], error) {
			gotCustomer = customerID
			gotParams = params
			return pagination.Paginate([]models.Appointment{}, 0, 1, 10), nil
		},
	}

	uc := NewListAppointments(appointments)

	env, err := uc.Execute(context.Background(), customerID, pagination.Params{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if gotCustomer != customerID {
		t.Fatalf("customerID = %q, want %q", gotCustomer, customerID)
	}
	if gotParams.Page != 2 || gotParams.Limit != 5 {
		t.Fatalf("params = %+v", gotParams)
	}
	if env.LastPage != 0 {
		t.Fatalf("lastPage = %d, want 0", env.LastPage)
	}
}
