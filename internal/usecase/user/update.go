package user

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

// UpdateUserInput carries the mutable fields. There is deliberately no
// password field: password changes are not supported through this path.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	UserType *models.UserType
	Document *string
	Phone    *string
	CRN      *string
	Active   *bool

	AppointmentTime *time.Time
}

type UpdateUser struct {
	users domain.Repository
}

func NewUpdateUser(users domain.Repository) *UpdateUser {
	return &UpdateUser{users: users}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id string,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrUserNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		// Same normalization the registration path applies, otherwise the
		// user can no longer be found by email.
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.UserType != nil {
		u.UserType = *in.UserType
	}
	if in.Document != nil {
		u.Document = *in.Document
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.CRN != nil {
		u.CRN = *in.CRN
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if in.AppointmentTime != nil {
		u.Parameters.AppointmentTime = in.AppointmentTime
	}

	if err := uc.users.Update(ctx, u); err != nil {
		if httperr.IsDuplicateKey(err) {
			return nil, httperr.ErrUserAlreadyExists
		}
		return nil, err
	}

	return u, nil
}
