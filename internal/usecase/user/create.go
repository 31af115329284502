package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	UserType models.UserType
	Document string
	Phone    string
	CRN      string

	AppointmentTime *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	users domain.Repository
}

func NewCreateUser(users domain.Repository) *CreateUser {
	return &CreateUser{users: users}
}

// Execute registers a user. The duplicate-email check runs before the
// password hash so a rejected registration has no hashing side effects.
func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = models.UserTypeUser
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		UserType:     userType,
		Document:     in.Document,
		Phone:        in.Phone,
		CRN:          in.CRN,
		Parameters:   models.Parameters{AppointmentTime: in.AppointmentTime},
		Active:       true,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if httperr.IsDuplicateKey(err) {
			return nil, httperr.ErrUserAlreadyExists
		}
		return nil, err
	}

	return u, nil
}
