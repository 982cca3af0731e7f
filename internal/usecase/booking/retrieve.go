package booking

import (
	"context"

	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type RetrieveBooking struct {
	repo domain.Repository
}

func NewRetrieveBooking(repo domain.Repository) *RetrieveBooking {
	return &RetrieveBooking{repo: repo}
}

func (uc *RetrieveBooking) Execute(
	ctx context.Context,
	caller identity.Caller,
	bookingID uint,
) (*models.Booking, error) {
	return uc.repo.GetForOwner(ctx, bookingID, caller.UserID)
}
