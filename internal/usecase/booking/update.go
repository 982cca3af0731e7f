package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	"github.com/BruksfildServices01/beauty-booking/internal/timezone"
)

type UpdateBooking struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewUpdateBooking(
	repo domain.Repository,
	clock timezone.Clock,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		clock: clock,
	}
}

// Execute applies a partial update to one of the caller's bookings. The
// id and owner are never part of the patch.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	caller identity.Caller,
	bookingID uint,
	patch domain.Patch,
) (*models.Booking, error) {

	now := uc.clock()

	// Resolved before the row lock is taken.
	var newService *models.Service
	if patch.ServiceID != nil {
		s, err := resolveService(ctx, uc.repo, *patch.ServiceID)
		if err != nil {
			return nil, err
		}
		newService = s
	}

	updated, err := uc.repo.UpdateForOwner(ctx, bookingID, caller.UserID, func(b *models.Booking) error {
		var service *models.Service
		if patch.Reschedules(b) {
			service = newService
			if service == nil {
				service = &b.Service
			}
		}
		return patch.Apply(b, service, now)
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("booking updated",
		zap.Uint("booking_id", updated.ID),
		zap.Uint("user_id", caller.UserID),
	)
	return updated, nil
}
