package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/auth"
	"github.com/BruksfildServices01/beauty-booking/internal/dto"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/httpresp"
	"github.com/BruksfildServices01/beauty-booking/internal/middleware"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	ucIdentity "github.com/BruksfildServices01/beauty-booking/internal/usecase/identity"
)

type AuthHandler struct {
	createUser   *ucIdentity.CreateUser
	authenticate *ucIdentity.Authenticate
	tokens       *auth.Tokens
}

func NewAuthHandler(
	createUser *ucIdentity.CreateUser,
	authenticate *ucIdentity.Authenticate,
	tokens *auth.Tokens,
) *AuthHandler {
	return &AuthHandler{
		createUser:   createUser,
		authenticate: authenticate,
		tokens:       tokens,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !httperr.BindJSON(c, &req) {
		return
	}

	user, err := h.createUser.Execute(c.Request.Context(), ucIdentity.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, user, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !httperr.BindJSON(c, &req) {
		return
	}

	user, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, user, false)
}

// Logout revokes the token used for this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "authentication required")
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), claims); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user *models.User, created bool) {
	token, exp, err := h.tokens.Issue(user)
	if err != nil {
		httperr.FromError(c, apperr.Wrap(err, apperr.CodeInternal, "issue token failed"))
		return
	}

	resp := dto.TokenResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.FromUser(user),
	}
	if created {
		httpresp.Created(c, resp)
		return
	}
	httpresp.OK(c, resp)
}
