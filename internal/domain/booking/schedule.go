package booking

import (
	"time"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

// ValidateStart rejects start times before now. now is taken by the
// caller at write time.
func ValidateStart(start, now time.Time) error {
	if start.IsZero() {
		return apperr.Invalid("start_time", "required")
	}
	if start.Before(now) {
		return apperr.Invalid("start_time", "must not be in the past")
	}
	return nil
}

func ValidateNotes(notes string) error {
	if len([]rune(notes)) > models.MaxNotesLength {
		return apperr.Invalid("notes", "must be at most 255 characters")
	}
	return nil
}

// Schedule sets start and the derived end time from the service duration.
func Schedule(b *models.Booking, start time.Time, service *models.Service) {
	b.StartTime = start
	b.ServiceID = service.ID
	b.Service = *service
	b.EndTime = start.Add(service.Duration)
}
