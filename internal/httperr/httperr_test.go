package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()
}

func serve(h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/", h)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) HTTPError {
	t.Helper()
	var out HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestFromErrorMapsCodes(t *testing.T) {
	cases := map[apperr.Code]int{
		apperr.CodeInvalid:      http.StatusBadRequest,
		apperr.CodeUnauthorized: http.StatusUnauthorized,
		apperr.CodeForbidden:    http.StatusForbidden,
		apperr.CodeNotFound:     http.StatusNotFound,
		apperr.CodeConflict:     http.StatusConflict,
		apperr.CodeUnavailable:  http.StatusServiceUnavailable,
	}
	for code, status := range cases {
		w := serve(func(c *gin.Context) { FromError(c, apperr.New(code, "msg")) }, "")
		assert.Equal(t, status, w.Code, code)
		assert.Equal(t, string(code), decode(t, w).Code)
	}
}

func TestFromErrorHidesInternalDetails(t *testing.T) {
	w := serve(func(c *gin.Context) {
		FromError(c, errors.New("pq: password authentication failed"))
	}, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Equal(t, "internal", decode(t, w).Code)
}

func TestFromErrorCarriesFields(t *testing.T) {
	w := serve(func(c *gin.Context) {
		FromError(c, apperr.Invalid("start_time", "must not be in the past"))
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{"start_time": "must not be in the past"}, decode(t, w).Fields)
}

type sample struct {
	StartTime *string `json:"start_time" binding:"required"`
	Notes     string  `json:"notes" binding:"max=5"`
	Count     int     `json:"count"`
}

func TestBindJSONReportsJSONFieldNames(t *testing.T) {
	h := func(c *gin.Context) {
		var s sample
		if !BindJSON(c, &s) {
			return
		}
		c.Status(http.StatusOK)
	}

	w := serve(h, `{"notes": "far too long"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w).Fields
	assert.Equal(t, "required", fields["start_time"])
	assert.Contains(t, fields, "notes")

	w = serve(h, `{"start_time": "x", "count": "three"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Fields, "count")

	w = serve(h, `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Fields, "body")

	w = serve(h, `{"start_time": "x"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindOptionalJSONAcceptsEmptyBodyOfUnknownLength(t *testing.T) {
	r := gin.New()
	r.PATCH("/", func(c *gin.Context) {
		s := sample{Count: 7}
		if !BindOptionalJSON(c, &s) {
			return
		}
		c.JSON(http.StatusOK, s)
	})

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		req.ContentLength = -1
		req.Header.Set("Transfer-Encoding", "chunked")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send("")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"start_time": null, "notes": "", "count": 7}`, w.Body.String())

	w = send(`{"count": "three"`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid", decode(t, w).Code)
}

func TestBindJSONDoesNotEchoReadErrors(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var s sample
		if BindJSON(c, &s) {
			c.Status(http.StatusOK)
		}
	})
	req := httptest.NewRequest(http.MethodPost, "/", iotest.ErrReader(errors.New("upstream 10.0.0.7 reset")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.7")
	assert.Equal(t, "unreadable request body", decode(t, w).Fields["body"])
}

func TestBindJSONRequiresBody(t *testing.T) {
	w := serve(func(c *gin.Context) {
		var s sample
		if BindJSON(c, &s) {
			c.Status(http.StatusOK)
		}
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "required", decode(t, w).Fields["body"])
}
