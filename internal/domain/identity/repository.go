package identity

import (
	"context"

	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
