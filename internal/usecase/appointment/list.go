package appointment

import (
	"context"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type ListAppointments struct {
	appointments domain.Repository
}

func NewListAppointments(appointments domain.Repository) *ListAppointments {
	return &ListAppointments{appointments: appointments}
}

// Execute lists the caller's appointments. Pagination defaulting happens at
// the store boundary, so an unset Params never means an unbounded query.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	customerID string,
	params pagination.Params,
) (pagination.Envelope[models.Appointment], error) {
	return uc.appointments.List(ctx, customerID, params)
}
