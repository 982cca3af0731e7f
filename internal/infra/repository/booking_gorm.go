package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var errBookingNotFound = apperr.NotFound("booking not found")

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "list bookings failed")
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, ownerID).
		First(&b).Error; err != nil {
		return nil, notFoundOr(err, errBookingNotFound, "get booking failed")
	}
	return &b, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error; err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "create booking failed")
	}
	return nil
}

func (r *BookingGormRepository) UpdateForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
	mutate func(b *models.Booking) error,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Service").
			Where("id = ? AND user_id = ?", bookingID, ownerID).
			First(&b).Error; err != nil {
			return notFoundOr(err, errBookingNotFound, "get booking failed")
		}

		if err := mutate(&b); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&b).Error; err != nil {
			return apperr.Wrap(err, apperr.CodeInternal, "update booking failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, ownerID).
		Delete(&models.Booking{})
	if res.Error != nil {
		return apperr.Wrap(res.Error, apperr.CodeInternal, "delete booking failed")
	}
	if res.RowsAffected == 0 {
		return errBookingNotFound
	}
	return nil
}

// --------------------------------------------------
// Service lookup
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, serviceID).Error; err != nil {
		return nil, notFoundOr(err, apperr.NotFound("service not found"), "get service failed")
	}
	return &s, nil
}

func notFoundOr(err error, notFound *apperr.AppError, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Wrap(err, apperr.CodeInternal, message)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
