package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mediagate_api/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Log(logging.Entry) {}

func TestGateAuthorize(t *testing.T) {
	gate := NewGate("s3cret")

	tests := []struct {
		name      string
		method    string
		presented string
		want      bool
	}{
		{"get without secret", http.MethodGet, "", true},
		{"get with wrong secret", http.MethodGet, "nope", true},
		{"put with secret", http.MethodPut, "s3cret", true},
		{"put with wrong secret", http.MethodPut, "nope", false},
		{"put without secret", http.MethodPut, "", false},
		{"delete with secret", http.MethodDelete, "s3cret", true},
		{"delete without secret", http.MethodDelete, "", false},
		{"post denied even with secret", http.MethodPost, "s3cret", false},
		{"patch denied", http.MethodPatch, "s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Authorize(tt.method, tt.presented))
		})
	}
}

func TestGateEmptySecretConfigured(t *testing.T) {
	gate := NewGate("")

	assert.True(t, gate.Authorize(http.MethodPut, ""))
	assert.False(t, gate.Authorize(http.MethodPut, "anything"))
}

func TestGateWithCreate(t *testing.T) {
	gate := NewGateWithCreate("s3cret")

	assert.True(t, gate.Authorize(http.MethodPost, "s3cret"))
	assert.False(t, gate.Authorize(http.MethodPost, ""))
	assert.False(t, gate.Authorize(http.MethodPatch, "s3cret"))
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthMiddleware(nopLogger{}, NewGate("s3cret")))
	r.PUT("/api/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPut, "/api/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Forbidden"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodPut, "/api/upload", nil)
	req.Header.Set(types.AUTH_KEY_HEADER, "s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
