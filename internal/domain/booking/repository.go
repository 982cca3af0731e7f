package booking

import (
	"context"

	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

// Repository is the booking store. Every read and write is scoped to an
// owner; a row owned by someone else is indistinguishable from a missing
// one.
type Repository interface {
	ListForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Booking, error)

	GetForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
	) (*models.Booking, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateForOwner loads the owner's booking (with its service) under a
	// row lock, hands it to mutate and persists the result in the same
	// transaction. mutate must not call back into the repository.
	UpdateForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
		mutate func(b *models.Booking) error,
	) (*models.Booking, error)

	DeleteForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
	) error

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)
}
