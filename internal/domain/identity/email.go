package identity

import (
	"strings"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
)

// NormalizeEmail lower-cases the domain part and keeps the local part as
// typed. Addresses without "@" are returned unchanged.
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperr.Invalid("email", "must be provided")
	}
	if len(email) > 255 {
		return apperr.Invalid("email", "must be at most 255 characters")
	}
	return nil
}
