package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

var errServiceNotFound = apperr.NotFound("service not found")

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "create service failed")
	}
	return nil
}

func (r *ServiceGormRepository) List(
	ctx context.Context,
	category models.ServiceCategory,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	services := []models.Service{}
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "list services failed")
	}
	return services, nil
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFoundOr(err, errServiceNotFound, "get service failed")
	}
	return &s, nil
}

func (r *ServiceGormRepository) SetImageURL(ctx context.Context, id uint, url string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return apperr.Wrap(res.Error, apperr.CodeInternal, "update service image failed")
	}
	if res.RowsAffected == 0 {
		return errServiceNotFound
	}
	return nil
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)
