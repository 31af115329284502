package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/VitaplanServices/appointment-scheduler/internal/clock"
	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

const appointmentID = "665f1f77bcf86cd799439099"

func existingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:           appointmentID,
		ProviderID:   providerID,
		CustomerID:   customerID,
		ScheduleDate: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestUpdateNotFound(t *testing.T) {
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return nil, domain.ErrNotFound
		},
	}
	users := &fakeUsers{}

	uc := NewUpdateAppointment(appointments, users, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           appointmentID,
		CustomerID:   customerID,
		ProviderID:   providerID,
		ScheduleDate: "2025-06-11T09:00",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("error = %v, want appointment_not_found", err)
	}
	if err.Error() != "Appointment with id "+appointmentID+" not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestUpdateRevalidatesDate(t *testing.T) {
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
	}
	users := &fakeUsers{}

	uc := NewUpdateAppointment(appointments, users, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           appointmentID,
		CustomerID:   customerID,
		ProviderID:   providerID,
		ScheduleDate: "2025-06-10T19:00",
	})
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("error = %v, want outside_business_hours", err)
	}
}

func TestUpdateExcludesItselfFromConflictCheck(t *testing.T) {
	var gotExcludeID string
	var saved *models.Appointment

	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		findConflictFn: func(ctx context.Context, providerID string, scheduleDate time.Time, excludeID string) ([]models.Appointment, error) {
			gotExcludeID = excludeID
			return nil, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			saved = ap
			return nil
		},
	}
	users := &fakeUsers{findByIDFn: providerExists}

	uc := NewUpdateAppointment(appointments, users, clock.Fixed(testNow))

	// same slot the record already holds
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           appointmentID,
		CustomerID:   customerID,
		ProviderID:   providerID,
		ScheduleDate: "2025-06-10T14:00",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if gotExcludeID != appointmentID {
		t.Fatalf("excludeID = %q, want %q", gotExcludeID, appointmentID)
	}
	if !saved.ScheduleDate.Equal(time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("saved scheduleDate = %v", saved.ScheduleDate)
	}
}

func TestUpdateConflictWithOtherAppointment(t *testing.T) {
	appointments := &fakeAppointments{
		findByIDFn: func(ctx context.Context, id, customerID string) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		findConflictFn: func(ctx context.Context, providerID string, scheduleDate time.Time, excludeID string) ([]models.Appointment, error) {
			return []models.Appointment{{ID: "other"}}, nil
		},
	}
	users := &fakeUsers{findByIDFn: providerExists}

	uc := NewUpdateAppointment(appointments, users, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           appointmentID,
		CustomerID:   customerID,
		ProviderID:   providerID,
		ScheduleDate: "2025-06-11T09:00",
	})
	if !httperr.IsBusiness(err, "already_booked") {
		t.Fatalf("error = %v, want already_booked", err)
	}
}
