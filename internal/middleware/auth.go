package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/auth"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

const (
	ContextCaller = "caller"
	ContextUser   = "user"
	ContextClaims = "claims"
)

type TokenParser interface {
	Parse(ctx context.Context, token string) (*auth.Claims, error)
}

type UserResolver interface {
	Execute(ctx context.Context, userID uint) (*models.User, error)
}

// AuthMiddleware rejects the request with 401 unless it carries a valid,
// unrevoked bearer token for an active user.
func AuthMiddleware(tokens TokenParser, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "invalid authorization header")
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.FromError(c, err)
			return
		}

		user, err := users.Execute(c.Request.Context(), claims.UserID)
		if err != nil {
			httperr.FromError(c, err)
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUser, user)
		c.Set(ContextCaller, identity.CallerFor(user))

		c.Next()
	}
}

// RequireStaff must run after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "authentication required")
			return
		}
		if !caller.IsStaff {
			httperr.Forbidden(c, string(apperr.CodeForbidden), "staff only")
			return
		}
		c.Next()
	}
}

func CallerFrom(c *gin.Context) (identity.Caller, bool) {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return identity.Caller{}, false
	}
	caller, ok := v.(identity.Caller)
	return caller, ok
}

func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
