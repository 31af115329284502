package appointment

import (
	"context"
	"errors"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
)

type RemoveAppointment struct {
	appointments domain.Repository
}

func NewRemoveAppointment(appointments domain.Repository) *RemoveAppointment {
	return &RemoveAppointment{appointments: appointments}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	id string,
	customerID string,
) error {

	ap, err := uc.appointments.FindByID(ctx, id, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrAppointmentNotFound(id)
		}
		return err
	}

	return uc.appointments.Delete(ctx, ap.ID)
}
