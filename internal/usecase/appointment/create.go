package appointment

import (
	"context"
	"errors"

	"github.com/VitaplanServices/appointment-scheduler/internal/clock"
	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	userdomain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID string
	ProviderID string

	// ScheduleDate is the raw ISO-8601-like date-time string; it is
	// truncated to the start of its hour before any rule runs.
	ScheduleDate string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments domain.Repository
	users        userdomain.Repository
	notifier     *notify.Dispatcher
	clock        clock.Clock
}

func NewCreateAppointment(
	appointments domain.Repository,
	users userdomain.Repository,
	notifier *notify.Dispatcher,
	clk clock.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		appointments: appointments,
		users:        users,
		notifier:     notifier,
		clock:        clk,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

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

	conflicts, err := uc.appointments.FindConflict(ctx, in.ProviderID, scheduleDate, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, httperr.ErrAlreadyBooked
	}

	// CustomerID always comes from the authenticated caller, never from
	// the request body.
	ap := &models.Appointment{
		ProviderID:   in.ProviderID,
		CustomerID:   in.CustomerID,
		ScheduleDate: scheduleDate,
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		// The unique index on (provider, slot) is the authoritative
		// conflict guard; the pre-check above is the fast path.
		if httperr.IsDuplicateKey(err) {
			return nil, httperr.ErrAlreadyBooked
		}
		return nil, err
	}

	uc.notifier.Notify(ap)
	uc.notifier.SendEmail(ap)

	return ap, nil
}
