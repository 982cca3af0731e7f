package catalog

import (
	"context"

	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	List(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	SetImageURL(ctx context.Context, id uint, url string) error
}
