package user

import (
	"context"
	"errors"

	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

// SearchParams filters the user listing. Active is the raw query value
// ("true"/"false"); empty means active only.
type SearchParams struct {
	Name   string
	Email  string
	CRN    string
	Active string
}

type Repository interface {
	FindByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	List(
		ctx context.Context,
		search SearchParams,
		params pagination.Params,
	) (pagination.Envelope[models.User], error)

	Create(
		ctx context.Context,
		u *models.User,
	) error

	Update(
		ctx context.Context,
		u *models.User,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}

// ErrNotFound is returned by lookups when the user does not exist.
var ErrNotFound = errors.New("user not found")
