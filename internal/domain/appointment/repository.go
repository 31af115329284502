package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type Repository interface {
	// -------- Lookup --------
	FindByID(
		ctx context.Context,
		id string,
		customerID string,
	) (*models.Appointment, error)

	// FindConflict returns the appointments holding the (provider, slot)
	// pair, skipping excludeID when non-empty.
	FindConflict(
		ctx context.Context,
		providerID string,
		scheduleDate time.Time,
		excludeID string,
	) ([]models.Appointment, error)

	List(
		ctx context.Context,
		customerID string,
		params pagination.Params,
	) (pagination.Envelope[models.Appointment], error)

	// -------- Mutation --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}

// ErrNotFound is returned by lookups when no row is visible to the caller.
var ErrNotFound = errors.New("appointment not found")
