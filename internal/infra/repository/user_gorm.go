package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var errUserNotFound = apperr.NotFound("user not found")

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.New(apperr.CodeConflict, "email already registered").
			WithField("email", "already registered")
	}
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "create user failed")
	}
	return nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "update user failed")
	}
	return nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, errUserNotFound, "get user failed")
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err, errUserNotFound, "get user by email failed")
	}
	return &u, nil
}

var _ identity.Repository = (*UserGormRepository)(nil)
