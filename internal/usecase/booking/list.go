package booking

import (
	"context"

	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking the caller owns, newest first.
func (uc *ListBookings) Execute(
	ctx context.Context,
	caller identity.Caller,
) ([]models.Booking, error) {
	return uc.repo.ListForOwner(ctx, caller.UserID)
}
