package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type ServiceDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int64     `json:"duration_minutes"`
	Cost            string    `json:"cost"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromService(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: int64(s.Duration / time.Minute),
		Cost:            s.Cost.StringFixed(2),
		Category:        string(s.Category),
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
	}
}

func FromServices(ss []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(ss))
	for i := range ss {
		out = append(out, FromService(&ss[i]))
	}
	return out
}

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required,max=255"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,gt=0,lte=1440"`
	Cost            decimal.Decimal `json:"cost"`
	Category        string          `json:"category" binding:"required"`
}
