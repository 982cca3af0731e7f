package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

var ErrInvalidToken = apperr.New(apperr.CodeUnauthorized, "invalid token")

type Claims struct {
	UserID    uint
	TokenID   string
	ExpiresAt time.Time
}

// Tokens issues and verifies HS256 bearer tokens.
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked Revoker
	now     func() time.Time
}

func NewTokens(secret string, ttl time.Duration, revoked Revoker) *Tokens {
	if revoked == nil {
		revoked = NoopRevoker{}
	}
	return &Tokens{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

func (t *Tokens) Issue(user *models.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature, expiry and revocation.
func (t *Tokens) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	var rc jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &rc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(rc.Subject, 10, 64)
	if err != nil || userID == 0 || rc.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := t.revoked.IsRevoked(ctx, rc.ID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUnavailable, "token revocation check failed")
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    uint(userID),
		TokenID:   rc.ID,
		ExpiresAt: rc.ExpiresAt.Time,
	}, nil
}

// Revoke blacklists the token until it would have expired anyway.
func (t *Tokens) Revoke(ctx context.Context, c *Claims) error {
	ttl := c.ExpiresAt.Sub(t.now())
	if ttl <= 0 {
		return nil
	}
	if err := t.revoked.Revoke(ctx, c.TokenID, ttl); err != nil {
		if errors.Is(err, ErrRevocationDisabled) {
			return apperr.Wrap(err, apperr.CodeUnavailable, "logout is not available")
		}
		return apperr.Wrap(err, apperr.CodeInternal, "revoke token failed")
	}
	return nil
}
