package booking

import (
	"time"

	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

// Patch lists the writable booking fields; nil means "leave unchanged".
type Patch struct {
	StartTime *time.Time
	Notes     *string
	ServiceID *uint
	Cancelled *bool
	Completed *bool
}

// Apply writes the patch onto b. service is the resolved service when the
// start time or the service changed, nil otherwise.
func (p Patch) Apply(b *models.Booking, service *models.Service, now time.Time) error {
	if p.Notes != nil {
		if err := ValidateNotes(*p.Notes); err != nil {
			return err
		}
		b.Notes = *p.Notes
	}

	if p.StartTime != nil && !p.StartTime.Equal(b.StartTime) {
		if err := ValidateStart(*p.StartTime, now); err != nil {
			return err
		}
	}

	if service != nil {
		start := b.StartTime
		if p.StartTime != nil {
			start = *p.StartTime
		}
		Schedule(b, start, service)
	}

	if p.Cancelled != nil {
		b.Cancelled = *p.Cancelled
	}
	if p.Completed != nil {
		b.Completed = *p.Completed
	}
	return nil
}

// Reschedules reports whether end time has to be derived again.
func (p Patch) Reschedules(b *models.Booking) bool {
	if p.StartTime != nil && !p.StartTime.Equal(b.StartTime) {
		return true
	}
	return p.ServiceID != nil && *p.ServiceID != b.ServiceID
}
