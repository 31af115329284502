package appointment

import (
	"context"
	"errors"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

type GetAppointment struct {
	appointments domain.Repository
}

func NewGetAppointment(appointments domain.Repository) *GetAppointment {
	return &GetAppointment{appointments: appointments}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id string,
	customerID string,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, id, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrAppointmentNotFound(id)
		}
		return nil, err
	}

	return ap, nil
}
