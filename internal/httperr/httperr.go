package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	WriteFields(c, status, code, message, nil)
}

func WriteFields(c *gin.Context, status int, code, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusOf maps an application error code to its HTTP status.
func StatusOf(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalid:
		return http.StatusBadRequest
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeForbidden:
		return http.StatusForbidden
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as a JSON error. Anything that is not an
// AppError, or is an internal one, is logged and hidden behind a generic
// message.
func FromError(c *gin.Context, err error) {
	ae, ok := asAppError(err)
	if !ok || ae.Code == apperr.CodeInternal {
		logger.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		Internal(c, string(apperr.CodeInternal), "internal server error")
		return
	}

	if ae.Code == apperr.CodeUnavailable {
		logger.L().Warn("dependency unavailable",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	WriteFields(c, StatusOf(ae.Code), string(ae.Code), ae.Message, ae.Fields)
}

func asAppError(err error) (*apperr.AppError, bool) {
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
