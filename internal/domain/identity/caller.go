package identity

import "github.com/BruksfildServices01/beauty-booking/internal/models"

// Caller is the authenticated identity a request acts as. It is passed
// explicitly into every scoped operation.
type Caller struct {
	UserID  uint
	Email   string
	IsStaff bool
}

func CallerFor(u *models.User) Caller {
	return Caller{
		UserID:  u.ID,
		Email:   u.Email,
		IsStaff: u.IsStaff || u.IsSuperuser,
	}
}
