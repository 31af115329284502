package models

import "time"

type UserType string

const (
	UserTypeUser         UserType = "user"
	UserTypeProfessional UserType = "professional"
)

// Parameters carries the scheduling preferences of a professional.
type Parameters struct {
	AppointmentTime *time.Time `json:"appointmentTime,omitempty"`
}

type User struct {
	ID string `gorm:"primaryKey;size:24" json:"id"`

	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	UserType     UserType `gorm:"size:20;default:'user'" json:"userType"`

	Document string `gorm:"size:20" json:"document,omitempty"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`

	// CRN is the professional registry number, only set for professionals.
	CRN string `gorm:"size:20" json:"crn,omitempty"`

	Parameters Parameters `gorm:"embedded;embeddedPrefix:parameter_" json:"parameters"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
