package user

import (
	"context"
	"errors"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
)

// AppointmentPurger removes every appointment a user takes part in,
// whether as customer or as provider. Removing a user must never leave
// bookings pointing at a row that no longer exists.
type AppointmentPurger interface {
	DeleteByUser(ctx context.Context, userID string) error
}

type RemoveUser struct {
	users        domain.Repository
	appointments AppointmentPurger
}

func NewRemoveUser(users domain.Repository, appointments AppointmentPurger) *RemoveUser {
	return &RemoveUser{users: users, appointments: appointments}
}

func (uc *RemoveUser) Execute(ctx context.Context, id string) error {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrUserNotFound
		}
		return err
	}

	if err := uc.appointments.DeleteByUser(ctx, u.ID); err != nil {
		return err
	}

	return uc.users.Delete(ctx, u.ID)
}
