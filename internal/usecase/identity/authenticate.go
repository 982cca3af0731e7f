package identity

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

var ErrInvalidCredentials = apperr.New(apperr.CodeUnauthorized, "invalid credentials")

// Authenticate checks an email and password pair. Unknown email, wrong
// password and inactive account are indistinguishable to the caller.
type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

func (uc *Authenticate) Execute(ctx context.Context, email, password string) (*models.User, error) {
	user, err := uc.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.L().Info("login refused for inactive user", zap.Uint("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ResolveUser loads the user behind a verified token. Missing or
// inactive users are unauthorized.
type ResolveUser struct {
	repo domain.Repository
}

func NewResolveUser(repo domain.Repository) *ResolveUser {
	return &ResolveUser{repo: repo}
}

func (uc *ResolveUser) Execute(ctx context.Context, userID uint) (*models.User, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, apperr.New(apperr.CodeUnauthorized, "user not found")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.CodeUnauthorized, "user is inactive")
	}
	return user, nil
}
