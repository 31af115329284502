package httperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// BusinessError is a client-fault condition carrying a stable code and the
// message surfaced to the caller. Never retried.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ===============================
// Error catalogue
// ===============================

var (
	ErrPastDate = BusinessError{
		Code:    "past_date",
		Message: "You can not create/update an appointment on a past date",
	}
	ErrOutsideBusinessHours = BusinessError{
		Code:    "outside_business_hours",
		Message: "You can only create/update appointments between 8am and 5pm",
	}
	ErrProviderNotFound = BusinessError{
		Code:    "provider_not_found",
		Message: "Provider not found",
	}
	ErrAlreadyBooked = BusinessError{
		Code:    "already_booked",
		Message: "This appointment is already booked",
	}
	ErrUserAlreadyExists = BusinessError{
		Code:    "user_already_exists",
		Message: "User already exists",
	}
	ErrUserNotFound = BusinessError{
		Code:    "user_not_found",
		Message: "User not found",
	}
	ErrMalformedObjectID = BusinessError{
		Code:    "malformed_object_id",
		Message: "Malformed ObjectId",
	}
)

func ErrAppointmentNotFound(id string) BusinessError {
	return BusinessError{
		Code:    "appointment_not_found",
		Message: fmt.Sprintf("Appointment with id %s not found", id),
	}
}

// IsDuplicateKey reports whether err is the translated unique-constraint
// violation from the persistence layer.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
