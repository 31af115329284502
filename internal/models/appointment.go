package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:24" json:"id"`

	// Both user columns are NOT NULL, so deleting a user cascades into the
	// bookings instead of trying to null them out.
	ProviderID string `gorm:"size:24;not null;uniqueIndex:idx_provider_slot" json:"providerId"`
	Provider   User   `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	CustomerID string `gorm:"size:24;not null;index" json:"customerId"`
	Customer   User   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	// ScheduleDate is always truncated to the top of the hour; the composite
	// unique index keeps one booking per provider per slot.
	ScheduleDate time.Time `gorm:"not null;uniqueIndex:idx_provider_slot" json:"scheduleDate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
