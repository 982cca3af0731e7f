package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceCategory string

const (
	CategoryLashes ServiceCategory = "LASHES"
	CategoryNails  ServiceCategory = "NAILS"
	CategoryBrows  ServiceCategory = "BROWS"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryLashes, CategoryNails, CategoryBrows:
		return true
	}
	return false
}

// Service is a catalog entry a booking refers to.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Duration    time.Duration   `gorm:"not null" json:"duration"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Category    ServiceCategory `gorm:"size:10;not null" json:"category"`
	ImageURL    string          `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}

func (s Service) String() string {
	return s.Name
}
