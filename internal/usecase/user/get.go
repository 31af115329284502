package user

import (
	"context"
	"errors"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

type GetUser struct {
	users domain.Repository
}

func NewGetUser(users domain.Repository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, id string) (*models.User, error) {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
