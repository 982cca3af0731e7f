package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

var maxCost = decimal.New(1, 8) // decimal(10,2)

// MaxDuration is the longest a single service may run.
const MaxDuration = 24 * time.Hour

// Validate checks a service before it is stored and collects every
// failing field.
func Validate(s *models.Service) error {
	verr := apperr.New(apperr.CodeInvalid, "validation failed")

	name := strings.TrimSpace(s.Name)
	switch {
	case name == "":
		verr.WithField("name", "required")
	case len([]rune(name)) > 255:
		verr.WithField("name", "must be at most 255 characters")
	}

	switch {
	case s.Duration <= 0:
		verr.WithField("duration_minutes", "must be greater than zero")
	case s.Duration > MaxDuration:
		verr.WithField("duration_minutes", "must be at most 1440")
	}

	if s.Cost.IsNegative() {
		verr.WithField("cost", "must not be negative")
	} else if s.Cost.GreaterThanOrEqual(maxCost) {
		verr.WithField("cost", "must have at most 8 integer digits")
	}

	if !s.Category.Valid() {
		verr.WithField("category", "must be one of LASHES, NAILS, BROWS")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
