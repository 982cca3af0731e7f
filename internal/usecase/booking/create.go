package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	"github.com/BruksfildServices01/beauty-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// CreateBookingInput holds the caller-writable fields only. The owner,
// lifecycle flags and timestamps are set here, never by the caller.
type CreateBookingInput struct {
	StartTime time.Time
	Notes     string
	ServiceID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	clock timezone.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		clock: clock,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	caller identity.Caller,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := domain.ValidateStart(in.StartTime, uc.clock()); err != nil {
		return nil, err
	}
	if err := domain.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	service, err := resolveService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:    caller.UserID,
		Notes:     in.Notes,
		Cancelled: false,
		Completed: false,
	}
	domain.Schedule(b, in.StartTime, service)

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.L().Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.Uint("user_id", caller.UserID),
		zap.Uint("service_id", service.ID),
	)
	return b, nil
}

// resolveService turns an unknown service id into a field error rather
// than a 404, since the booking itself exists.
func resolveService(ctx context.Context, repo domain.Repository, id uint) (*models.Service, error) {
	if id == 0 {
		return nil, apperr.Invalid("service", "required")
	}
	service, err := repo.GetService(ctx, id)
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, apperr.Invalid("service", "does not exist")
	}
	if err != nil {
		return nil, err
	}
	return service, nil
}
