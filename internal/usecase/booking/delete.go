package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
)

type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	caller identity.Caller,
	bookingID uint,
) error {
	if err := uc.repo.DeleteForOwner(ctx, bookingID, caller.UserID); err != nil {
		return err
	}

	logger.L().Info("booking deleted",
		zap.Uint("booking_id", bookingID),
		zap.Uint("user_id", caller.UserID),
	)
	return nil
}
