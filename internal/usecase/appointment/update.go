package appointment

import (
	"context"
	"errors"

	"github.com/VitaplanServices/appointment-scheduler/internal/clock"
	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	userdomain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	ID         string
	CustomerID string
	ProviderID string

	ScheduleDate string
}

type UpdateAppointment struct {
	appointments domain.Repository
	users        userdomain.Repository
	clock        clock.Clock
}

func NewUpdateAppointment(
	appointments domain.Repository,
	users userdomain.Repository,
	clk clock.Clock,
) *UpdateAppointment {
	return &UpdateAppointment{
		appointments: appointments,
		users:        users,
		clock:        clk,
	}
}

// Execute re-runs the full create pipeline against the proposed date and
// provider. The conflict check excludes the record being updated, so
// re-saving an unchanged slot succeeds. No notification is dispatched.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.ID, in.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrAppointmentNotFound(in.ID)
		}
		return nil, err
	}

	now := uc.clock.Now()

	scheduleDate, err := domain.ParseScheduleDate(in.ScheduleDate, now.Location())
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSchedule(scheduleDate, now); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByID(ctx, in.ProviderID); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, httperr.ErrProviderNotFound
		}
		return nil, err
	}

	conflicts, err := uc.appointments.FindConflict(ctx, in.ProviderID, scheduleDate, ap.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, httperr.ErrAlreadyBooked
	}

	ap.ProviderID = in.ProviderID
	ap.CustomerID = in.CustomerID
	ap.ScheduleDate = scheduleDate

	if err := uc.appointments.Update(ctx, ap); err != nil {
		if httperr.IsDuplicateKey(err) {
			return nil, httperr.ErrAlreadyBooked
		}
		return nil, err
	}

	return ap, nil
}
