package identity

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

const minPasswordLength = 8

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// DomainChecker reports whether the domain of an address can receive mail.
// A nil checker skips the lookup.
type DomainChecker func(email string) bool

type CreateUser struct {
	repo        domain.Repository
	checkDomain DomainChecker
	cost        int
}

func NewCreateUser(repo domain.Repository, checkDomain DomainChecker) *CreateUser {
	return &CreateUser{
		repo:        repo,
		checkDomain: checkDomain,
		cost:        bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost, mostly so tests stay fast.
func (uc *CreateUser) WithCost(cost int) *CreateUser {
	uc.cost = cost
	return uc
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*models.User, error) {
	return uc.create(ctx, in, false)
}

func (uc *CreateUser) create(ctx context.Context, in CreateUserInput, superuser bool) (*models.User, error) {
	if err := domain.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(in.Email)

	if len(in.Password) < minPasswordLength {
		return nil, apperr.Invalid("password", "must be at least 8 characters")
	}
	if len([]rune(in.Name)) > 255 {
		return nil, apperr.Invalid("name", "must be at most 255 characters")
	}

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, apperr.Invalid("email", "domain does not accept mail")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.L().Info("user created",
		zap.Uint("user_id", user.ID),
		zap.Bool("superuser", superuser),
	)
	return user, nil
}

// CreateSuperuser creates a user that holds staff and superuser from its
// first write.
type CreateSuperuser struct {
	users *CreateUser
}

func NewCreateSuperuser(users *CreateUser) *CreateSuperuser {
	return &CreateSuperuser{users: users}
}

func (uc *CreateSuperuser) Execute(ctx context.Context, email, password string) (*models.User, error) {
	return uc.users.create(ctx, CreateUserInput{Email: email, Password: password}, true)
}
