package dto

import (
	"time"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/booking"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

// BookingDTO is the wire form of a booking. id, end_time and created_at
// are read-only; service is the catalog id.
type BookingDTO struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	Cancelled bool      `json:"cancelled"`
	Completed bool      `json:"completed"`
	Service   uint      `json:"service"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		Cancelled: b.Cancelled,
		Completed: b.Completed,
		Service:   b.ServiceID,
	}
}

func FromBookings(bs []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bs))
	for i := range bs {
		out = append(out, FromBooking(&bs[i]))
	}
	return out
}

// ======================================================
// REQUESTS
// ======================================================
// Read-only fields are simply absent here, so values sent for them are
// dropped by the decoder. start_time is kept as text and parsed after
// binding so a bad timestamp is reported against its own field.

type CreateBookingRequest struct {
	StartTime *string `json:"start_time" binding:"required"`
	Notes     string     `json:"notes" binding:"max=255"`
	Service   *uint      `json:"service" binding:"required"`
}

// ReplaceBookingRequest is the PUT body.
type ReplaceBookingRequest struct {
	StartTime *string `json:"start_time" binding:"required"`
	Service   *uint   `json:"service" binding:"required"`
	Notes     *string `json:"notes" binding:"omitempty,max=255"`
	Cancelled *bool   `json:"cancelled"`
	Completed *bool   `json:"completed"`
}

// PatchBookingRequest is the PATCH body.
type PatchBookingRequest struct {
	StartTime *string `json:"start_time"`
	Service   *uint   `json:"service"`
	Notes     *string `json:"notes" binding:"omitempty,max=255"`
	Cancelled *bool   `json:"cancelled"`
	Completed *bool   `json:"completed"`
}

// Start returns the parsed start_time.
func (r CreateBookingRequest) Start() (time.Time, error) {
	t, err := parseTimestamp(r.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return *t, nil
}

func (r ReplaceBookingRequest) ToPatch() (domain.Patch, error) {
	start, err := parseTimestamp(r.StartTime)
	if err != nil {
		return domain.Patch{}, err
	}
	return domain.Patch{
		StartTime: start,
		ServiceID: r.Service,
		Notes:     r.Notes,
		Cancelled: r.Cancelled,
		Completed: r.Completed,
	}, nil
}

func (r PatchBookingRequest) ToPatch() (domain.Patch, error) {
	var start *time.Time
	if r.StartTime != nil {
		t, err := parseTimestamp(r.StartTime)
		if err != nil {
			return domain.Patch{}, err
		}
		start = t
	}
	return domain.Patch{
		StartTime: start,
		ServiceID: r.Service,
		Notes:     r.Notes,
		Cancelled: r.Cancelled,
		Completed: r.Completed,
	}, nil
}

// parseTimestamp accepts RFC 3339 with optional fractional seconds.
func parseTimestamp(s *string) (*time.Time, error) {
	if s == nil {
		return nil, apperr.Invalid("start_time", "required")
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, apperr.Invalid("start_time", "must be an ISO-8601 timestamp")
	}
	return &t, nil
}
