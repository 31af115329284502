package user

import (
	"context"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type ListUsers struct {
	users domain.Repository
}

func NewListUsers(users domain.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	search domain.SearchParams,
	params pagination.Params,
) (pagination.Envelope[models.User], error) {
	return uc.users.List(ctx, search, params)
}
