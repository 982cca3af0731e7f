package models

import "time"

// Booking rows are removed together with their owner or their service.
type Booking struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	ServiceID uint    `gorm:"not null;index"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`

	Notes     string `gorm:"size:255"`
	Cancelled bool   `gorm:"not null;default:false"`
	Completed bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

const MaxNotesLength = 255
